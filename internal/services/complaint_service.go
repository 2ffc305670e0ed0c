package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrComplaintMessageRequired = errors.New("Complaint message is required")
	ErrComplaintNotFound        = errors.New("Complaint not found")
)

type ComplaintService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewComplaintService(db *gorm.DB, notifications *NotificationService) *ComplaintService {
	return &ComplaintService{db: db, notifications: notifications}
}

// Create files a complaint and fans out to every Dev Operations Assistant.
func (s *ComplaintService) Create(reporterID uint, subject, message string) (*models.Complaint, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrComplaintMessageRequired
	}
	if subject == "" {
		subject = "General"
	}

	complaint := models.Complaint{
		ReporterID: reporterID,
		Subject:    subject,
		Message:    message,
		Status:     models.ComplaintOpen,
	}
	if err := s.db.Create(&complaint).Error; err != nil {
		return nil, err
	}

	s.notifications.NotifyRole(models.RoleDevOpsAssistant,
		"New complaint: "+subject, message,
		"complaint", "/complaints-history.html")

	return &complaint, nil
}

// List returns all complaints joined with the reporter's identity, newest first.
func (s *ComplaintService) List() ([]dto.ComplaintQueueItem, error) {
	var rows []dto.ComplaintQueueItem
	err := s.db.Table("complaints").
		Select("complaints.*, users.name AS reporter_name, users.member_id AS member_id, users.role AS reporter_role").
		Joins("JOIN users ON users.id = complaints.reporter_id").
		Order("complaints.created_at DESC, complaints.id DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateStatus moves a complaint through triage; unknown values fall back to
// open. The reporter hears back when the complaint is resolved.
func (s *ComplaintService) UpdateStatus(complaintID uint, status string) error {
	status = models.NormalizeComplaintStatus(status)

	var complaint models.Complaint
	if err := s.db.First(&complaint, "id = ?", complaintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrComplaintNotFound
		}
		return err
	}

	if err := s.db.Model(&complaint).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return err
	}

	if status == models.ComplaintResolved {
		s.notifications.NotifyUser(complaint.ReporterID,
			"Complaint resolved",
			"Your complaint \""+complaint.Subject+"\" has been resolved",
			"complaint", "/report-complaint.html")
	}
	return nil
}
