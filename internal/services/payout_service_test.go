package services

import (
	"errors"
	"testing"

	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
)

func TestPayoutService_ListForRole_Scoping(t *testing.T) {
	db := setupTestDB(t)
	service := NewPayoutService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	other := createUser(t, db, "MEM-2025-002", "Yamikani Chimenya", models.RoleCoreTeam)
	admin := createUser(t, db, "FON-2025-003", "Rodrick Mchochoma", models.RoleAdmin)

	db.Create(&models.Payout{UserID: member.ID, Type: "salary", Amount: 100, Month: "08", Year: "2026"})
	db.Create(&models.Payout{UserID: other.ID, Type: "salary", Amount: 200, Month: "08", Year: "2026"})

	own, err := service.ListForRole(member.ID, models.RoleCoreTeam)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if len(own) != 1 || own[0].UserID != member.ID {
		t.Errorf("Expected only own rows for Core Team, got %d", len(own))
	}

	all, err := service.ListForRole(admin.ID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("ListForRole failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected Admin to see all rows, got %d", len(all))
	}

	superAll, _ := service.ListForRole(admin.ID, models.RoleSuperAdmin)
	if len(superAll) != 2 {
		t.Errorf("Expected Super Admin to see all rows, got %d", len(superAll))
	}
}

func TestPayoutService_ExportRows_JoinsIdentity(t *testing.T) {
	db := setupTestDB(t)
	service := NewPayoutService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	db.Create(&models.Payout{UserID: member.ID, Type: "bonus", Amount: 300, Month: "08", Year: "2026"})

	rows, err := service.ExportRows(member.ID, models.RoleCoreTeam)
	if err != nil {
		t.Fatalf("ExportRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].MemberName != "Jessie Chumbu" || rows[0].MemberID != "MEM-2025-001" {
		t.Errorf("Expected member identity joined, got %+v", rows[0])
	}
}

func TestPayoutService_CreateUpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	service := NewPayoutService(db)
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)

	payout, err := service.Create(&dto.PayoutRequest{UserID: member.ID, Type: "salary", Amount: 500, Month: "08", Year: "2026"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if payout.Status != "pending" {
		t.Errorf("Expected default pending status, got %q", payout.Status)
	}

	err = service.Update(payout.ID, &dto.PayoutRequest{Type: "salary", Amount: 550, Month: "08", Year: "2026", Status: "paid"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	var stored models.Payout
	db.First(&stored, payout.ID)
	if stored.Amount != 550 || stored.Status != "paid" {
		t.Errorf("Expected 550/paid, got %v/%q", stored.Amount, stored.Status)
	}

	if err := service.Delete(payout.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := service.Delete(payout.ID); !errors.Is(err, ErrPayoutNotFound) {
		t.Errorf("Expected ErrPayoutNotFound, got %v", err)
	}
	if err := service.Update(payout.ID, &dto.PayoutRequest{}); !errors.Is(err, ErrPayoutNotFound) {
		t.Errorf("Expected ErrPayoutNotFound on update, got %v", err)
	}
}
