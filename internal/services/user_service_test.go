package services

import (
	"errors"
	"testing"

	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
)

func TestUserService_Create_Validation(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	_, err := service.Create(&dto.CreateUserRequest{MemberID: "X-1", Name: "No Role", PIN: "1234"})
	if !errors.Is(err, ErrUserFieldsRequired) {
		t.Errorf("Expected ErrUserFieldsRequired, got %v", err)
	}

	first, err := service.Create(&dto.CreateUserRequest{
		MemberID: "MEM-2025-010", Name: "New Member", Role: models.RoleCoreTeam, PIN: "1234",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.PIN == "1234" {
		t.Error("Expected PIN stored as a hash, got plaintext")
	}

	_, err = service.Create(&dto.CreateUserRequest{
		MemberID: "MEM-2025-010", Name: "Duplicate", Role: models.RoleCoreTeam, PIN: "1234",
	})
	if !errors.Is(err, ErrMemberIDTaken) {
		t.Errorf("Expected ErrMemberIDTaken, got %v", err)
	}
}

func TestUserService_Delete_CascadesDependents(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	victim := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)

	db.Create(&models.Payout{UserID: victim.ID, Type: "salary", Amount: 100, Month: "08", Year: "2026"})
	db.Create(&models.WithdrawalRequest{UserID: victim.ID, Amount: 50, Method: "bank"})
	db.Create(&models.Notification{UserID: victim.ID, Title: "Hi", Message: "There"})
	db.Create(&models.Complaint{ReporterID: victim.ID, Subject: "S", Message: "M"})
	db.Create(&models.WeeklyReport{DeveloperID: victim.ID, DeveloperName: victim.Name, DeveloperMemberID: victim.MemberID, ProjectName: "P", ReportDate: "2026-08-30", WorkCompleted: "w"})
	revenue := models.Revenue{Branch: "Lilongwe", Amount: 900, Month: "08", Year: "2026", SubmittedBy: &victim.ID}
	db.Create(&revenue)

	if err := service.Delete(victim.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int64
	db.Model(&models.Payout{}).Where("user_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected payouts cascade-deleted, %d rows remain", count)
	}
	db.Model(&models.WithdrawalRequest{}).Where("user_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected withdrawals cascade-deleted, %d rows remain", count)
	}
	db.Model(&models.Notification{}).Where("user_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected notifications cascade-deleted, %d rows remain", count)
	}
	db.Model(&models.Complaint{}).Where("reporter_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected complaints cascade-deleted, %d rows remain", count)
	}
	db.Model(&models.WeeklyReport{}).Where("developer_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected weekly reports cascade-deleted, %d rows remain", count)
	}

	// Revenue survives with the submitter unlinked
	var kept models.Revenue
	if err := db.First(&kept, revenue.ID).Error; err != nil {
		t.Fatalf("Expected revenue row kept: %v", err)
	}
	if kept.SubmittedBy != nil {
		t.Errorf("Expected submitted_by cleared, got %v", kept.SubmittedBy)
	}

	if err := service.Delete(victim.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_Delete_AbortsOnChildFailure(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	victim := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	db.Create(&models.Payout{UserID: victim.ID, Type: "salary", Amount: 100, Month: "08", Year: "2026"})

	// Break one dependent table so its delete fails mid-cascade
	if err := db.Migrator().DropTable(&models.Complaint{}); err != nil {
		t.Fatalf("Failed to drop table: %v", err)
	}

	if err := service.Delete(victim.ID); err == nil {
		t.Fatal("Expected cascade delete to surface the child error")
	}

	// The transaction rolled back: the user and earlier children survive
	var user models.User
	if err := db.First(&user, victim.ID).Error; err != nil {
		t.Errorf("Expected user kept after failed cascade: %v", err)
	}
	var payouts int64
	db.Model(&models.Payout{}).Where("user_id = ?", victim.ID).Count(&payouts)
	if payouts != 1 {
		t.Errorf("Expected payout row kept after rollback, got %d", payouts)
	}
}

func TestUserService_SetCompensation(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)

	if err := service.SetCompensation(member.ID, 1000, 200, -1); !errors.Is(err, ErrInvalidCompensation) {
		t.Errorf("Expected ErrInvalidCompensation, got %v", err)
	}
	if err := service.SetCompensation(9999, 1000, 0, 0); !errors.Is(err, ErrCompensationUserAbsent) {
		t.Errorf("Expected ErrCompensationUserAbsent, got %v", err)
	}

	if err := service.SetCompensation(member.ID, 1500, 250, 75); err != nil {
		t.Fatalf("SetCompensation failed: %v", err)
	}
	var stored models.User
	db.First(&stored, member.ID)
	if stored.Salary != 1500 || stored.Bonus != 250 || stored.Dividends != 75 {
		t.Errorf("Expected 1500/250/75, got %v/%v/%v", stored.Salary, stored.Bonus, stored.Dividends)
	}
}
