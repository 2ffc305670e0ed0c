package services

import (
	"errors"
	"testing"

	"github.com/mykweza/kweza-backend/internal/models"
)

func TestComplaintService_Create_DefaultsAndFanOut(t *testing.T) {
	db := setupTestDB(t)
	service := NewComplaintService(db, NewNotificationService(db, nil))
	reporter := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	devops := createUser(t, db, "CTM-2026-005", "Takondwa Zephania", models.RoleDevOpsAssistant)

	complaint, err := service.Create(reporter.ID, "", "  The portal keeps logging me out  ")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if complaint.Subject != "General" {
		t.Errorf("Expected default subject General, got %q", complaint.Subject)
	}
	if complaint.Message != "The portal keeps logging me out" {
		t.Errorf("Expected trimmed message, got %q", complaint.Message)
	}
	if complaint.Status != models.ComplaintOpen {
		t.Errorf("Expected open status, got %q", complaint.Status)
	}

	var count int64
	db.Model(&models.Notification{}).Where("user_id = ?", devops.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected Dev Operations Assistant notified, got %d rows", count)
	}

	if _, err := service.Create(reporter.ID, "Subject", "   "); !errors.Is(err, ErrComplaintMessageRequired) {
		t.Errorf("Expected ErrComplaintMessageRequired, got %v", err)
	}
}

func TestComplaintService_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	service := NewComplaintService(db, NewNotificationService(db, nil))
	reporter := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)

	complaint, _ := service.Create(reporter.ID, "Login", "Cannot sign in")

	if err := service.UpdateStatus(complaint.ID, "in_review"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	var stored models.Complaint
	db.First(&stored, complaint.ID)
	if stored.Status != models.ComplaintInReview {
		t.Errorf("Expected in_review, got %q", stored.Status)
	}

	// Unknown status falls back to open
	if err := service.UpdateStatus(complaint.ID, "escalated"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	db.First(&stored, complaint.ID)
	if stored.Status != models.ComplaintOpen {
		t.Errorf("Expected unknown status to store open, got %q", stored.Status)
	}

	if err := service.UpdateStatus(complaint.ID, "resolved"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	var resolvedNotice int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND title = ?", reporter.ID, "Complaint resolved").
		Count(&resolvedNotice)
	if resolvedNotice != 1 {
		t.Errorf("Expected reporter notified on resolve, got %d", resolvedNotice)
	}

	if err := service.UpdateStatus(9999, "resolved"); !errors.Is(err, ErrComplaintNotFound) {
		t.Errorf("Expected ErrComplaintNotFound, got %v", err)
	}
}
