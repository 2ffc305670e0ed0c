package services

import (
	"errors"
	"testing"

	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Payout{},
		&models.WithdrawalRequest{},
		&models.Revenue{},
		&models.Complaint{},
		&models.WeeklyReport{},
		&models.BranchDetailedReport{},
		&models.Notification{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, memberID, name, role string) *models.User {
	t.Helper()
	user := models.User{
		MemberID: memberID,
		Name:     name,
		Role:     role,
		PIN:      "unused",
		Branch:   "Headquarters",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", memberID, err)
	}
	return &user
}

func newWithdrawalService(db *gorm.DB) *WithdrawalService {
	return NewWithdrawalService(db, NewNotificationService(db, nil), nil)
}

func TestWithdrawalService_Create_RejectsZeroAmount(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)

	if _, err := service.Create(member.ID, 0, "bank", ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("Expected ErrInvalidAmount, got %v", err)
	}
	if _, err := service.Create(member.ID, -50, "bank", ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("Expected ErrInvalidAmount for negative amount, got %v", err)
	}
}

func TestWithdrawalService_Create_NotifiesManagersAndRequester(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	fm1 := createUser(t, db, "FON-2025-002", "Future I. Cherani", models.RoleFinancialManager)
	fm2 := createUser(t, db, "MEM-2025-005", "Bridget F. Chinyanga", models.RoleFinancialManager)

	req, err := service.Create(member.ID, 150, "mobile money", "0999...")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if req.Status != models.WithdrawalPending {
		t.Errorf("Expected pending status, got %q", req.Status)
	}

	for _, fm := range []*models.User{fm1, fm2} {
		var count int64
		db.Model(&models.Notification{}).Where("user_id = ?", fm.ID).Count(&count)
		if count != 1 {
			t.Errorf("Expected 1 notification for %s, got %d", fm.MemberID, count)
		}
	}

	var receipt int64
	db.Model(&models.Notification{}).Where("user_id = ?", member.ID).Count(&receipt)
	if receipt != 1 {
		t.Errorf("Expected 1 submission receipt, got %d", receipt)
	}
}

func TestWithdrawalService_Review_AcceptStampsReviewer(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	reviewer := createUser(t, db, "FON-2025-002", "Future I. Cherani", models.RoleFinancialManager)

	req, err := service.Create(member.ID, 200, "bank", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := service.Review(req.ID, reviewer.ID, "accepted"); err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	var stored models.WithdrawalRequest
	db.First(&stored, req.ID)
	if stored.Status != models.WithdrawalAccepted {
		t.Errorf("Expected accepted, got %q", stored.Status)
	}
	if stored.ReviewedBy == nil || *stored.ReviewedBy != reviewer.ID {
		t.Errorf("Expected reviewer %d stamped, got %v", reviewer.ID, stored.ReviewedBy)
	}
	if stored.ReviewedAt == nil {
		t.Error("Expected reviewed_at to be set")
	}
}

func TestWithdrawalService_Review_NormalizesLegacyApproved(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	reviewer := createUser(t, db, "FON-2025-002", "Future I. Cherani", models.RoleFinancialManager)

	req, _ := service.Create(member.ID, 75, "bank", "")
	if err := service.Review(req.ID, reviewer.ID, "Approved"); err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	var stored models.WithdrawalRequest
	db.First(&stored, req.ID)
	if stored.Status != models.WithdrawalAccepted {
		t.Errorf("Expected legacy approved to store as accepted, got %q", stored.Status)
	}
}

func TestWithdrawalService_Review_RejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)

	req, _ := service.Create(member.ID, 75, "bank", "")
	if err := service.Review(req.ID, member.ID, "paid"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("Expected ErrInvalidStatus for direct paid, got %v", err)
	}
	if err := service.Review(999, member.ID, "accepted"); !errors.Is(err, ErrWithdrawalNotFound) {
		t.Fatalf("Expected ErrWithdrawalNotFound, got %v", err)
	}
}

func TestWithdrawalService_MarkPaid_FullLifecycle(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	reviewer := createUser(t, db, "FON-2025-002", "Future I. Cherani", models.RoleFinancialManager)

	req, _ := service.Create(member.ID, 500, "bank", "")
	if err := service.Review(req.ID, reviewer.ID, "accepted"); err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if err := service.MarkPaid(req.ID, reviewer.ID, "Your payment of 500.00 has been sent"); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}

	var stored models.WithdrawalRequest
	db.First(&stored, req.ID)
	if stored.Status != models.WithdrawalPaid {
		t.Errorf("Expected paid, got %q", stored.Status)
	}
	if stored.NotificationMessage != "Your payment of 500.00 has been sent" {
		t.Errorf("Expected payment message stored, got %q", stored.NotificationMessage)
	}
	if stored.NotificationSentAt == nil || stored.NotificationSentBy == nil {
		t.Error("Expected notification audit fields to be set")
	}

	// Re-sending against a paid request is allowed
	if err := service.MarkPaid(req.ID, reviewer.ID, "Resent confirmation"); err != nil {
		t.Fatalf("Expected re-send to succeed, got %v", err)
	}
}

func TestWithdrawalService_MarkPaid_Preconditions(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	reviewer := createUser(t, db, "FON-2025-002", "Future I. Cherani", models.RoleFinancialManager)

	pending, _ := service.Create(member.ID, 100, "bank", "")
	if err := service.MarkPaid(pending.ID, reviewer.ID, "msg"); !errors.Is(err, ErrNotAccepted) {
		t.Fatalf("Expected ErrNotAccepted for pending request, got %v", err)
	}

	rejected, _ := service.Create(member.ID, 100, "bank", "")
	service.Review(rejected.ID, reviewer.ID, "rejected")
	if err := service.MarkPaid(rejected.ID, reviewer.ID, "msg"); !errors.Is(err, ErrNotAccepted) {
		t.Fatalf("Expected ErrNotAccepted for rejected request, got %v", err)
	}

	accepted, _ := service.Create(member.ID, 100, "bank", "")
	service.Review(accepted.ID, reviewer.ID, "accepted")
	if err := service.MarkPaid(accepted.ID, reviewer.ID, ""); !errors.Is(err, ErrMessageRequired) {
		t.Fatalf("Expected ErrMessageRequired, got %v", err)
	}
	if err := service.MarkPaid(accepted.ID, reviewer.ID, "   \n\t "); !errors.Is(err, ErrMessageRequired) {
		t.Fatalf("Expected ErrMessageRequired for whitespace-only message, got %v", err)
	}

	var stored models.WithdrawalRequest
	db.First(&stored, accepted.ID)
	if stored.Status != models.WithdrawalAccepted {
		t.Errorf("Expected request untouched after rejected message, got %q", stored.Status)
	}
}

func TestWithdrawalService_MarkPaid_TrimsMessage(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	reviewer := createUser(t, db, "FON-2025-002", "Future I. Cherani", models.RoleFinancialManager)

	req, _ := service.Create(member.ID, 100, "bank", "")
	service.Review(req.ID, reviewer.ID, "accepted")

	if err := service.MarkPaid(req.ID, reviewer.ID, "  Payment sent via bank  "); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}

	var stored models.WithdrawalRequest
	db.First(&stored, req.ID)
	if stored.NotificationMessage != "Payment sent via bank" {
		t.Errorf("Expected trimmed message stored, got %q", stored.NotificationMessage)
	}

	var notice models.Notification
	if err := db.First(&notice, "user_id = ? AND title = ?", member.ID, "Withdrawal paid").Error; err != nil {
		t.Fatalf("Expected payment notification: %v", err)
	}
	if notice.Message != "Payment sent via bank" {
		t.Errorf("Expected trimmed message sent, got %q", notice.Message)
	}
}

func TestWithdrawalService_MarkPaid_HandlesLegacyApprovedRows(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	reviewer := createUser(t, db, "FON-2025-002", "Future I. Cherani", models.RoleFinancialManager)

	// Row written by an older client before the rename
	legacy := models.WithdrawalRequest{UserID: member.ID, Amount: 80, Method: "bank", Status: "approved"}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatalf("Failed to insert legacy row: %v", err)
	}

	if err := service.MarkPaid(legacy.ID, reviewer.ID, "Payment sent"); err != nil {
		t.Fatalf("Expected legacy approved row to be payable, got %v", err)
	}

	var stored models.WithdrawalRequest
	db.First(&stored, legacy.ID)
	if stored.Status != models.WithdrawalPaid {
		t.Errorf("Expected paid, got %q", stored.Status)
	}
}

func TestWithdrawalService_Override_AllowsAnyKnownStatus(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	admin := createUser(t, db, "SA-2025-001", "Root Admin", models.RoleSuperAdmin)

	req, _ := service.Create(member.ID, 300, "bank", "")

	if err := service.Override(req.ID, admin.ID, "paid"); err != nil {
		t.Fatalf("Override to paid failed: %v", err)
	}
	var stored models.WithdrawalRequest
	db.First(&stored, req.ID)
	if stored.Status != models.WithdrawalPaid {
		t.Errorf("Expected paid, got %q", stored.Status)
	}

	if err := service.Override(req.ID, admin.ID, "approved"); err != nil {
		t.Fatalf("Override with legacy approved failed: %v", err)
	}
	db.First(&stored, req.ID)
	if stored.Status != models.WithdrawalAccepted {
		t.Errorf("Expected accepted after legacy override, got %q", stored.Status)
	}

	if err := service.Override(req.ID, admin.ID, "bogus"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestWithdrawalService_ListAll_JoinsRequesterIdentity(t *testing.T) {
	db := setupTestDB(t)
	service := newWithdrawalService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	other := createUser(t, db, "MEM-2025-002", "Yamikani Chimenya", models.RoleCoreTeam)

	service.Create(member.ID, 100, "bank", "")
	service.Create(other.ID, 200, "mobile money", "")

	rows, err := service.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.MemberName == "" || row.MemberID == "" {
			t.Errorf("Expected requester identity joined, got %+v", row)
		}
	}

	own, err := service.ListOwn(member.ID)
	if err != nil {
		t.Fatalf("ListOwn failed: %v", err)
	}
	if len(own) != 1 {
		t.Errorf("Expected 1 own row, got %d", len(own))
	}
}
