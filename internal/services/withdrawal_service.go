package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/metrics"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrWithdrawalNotFound = errors.New("Withdrawal request not found")
	ErrInvalidAmount      = errors.New("Withdrawal amount must be greater than zero")
	ErrInvalidStatus      = errors.New("Status must be accepted or rejected")
	ErrMessageRequired    = errors.New("Notification message is required")
	ErrNotAccepted        = errors.New("Request must be accepted before sending payment notification")
)

// WithdrawalService owns the request lifecycle:
// pending -> accepted -> paid, or pending -> rejected.
type WithdrawalService struct {
	db            *gorm.DB
	notifications *NotificationService
	m             *metrics.Metrics
}

func NewWithdrawalService(db *gorm.DB, notifications *NotificationService, m *metrics.Metrics) *WithdrawalService {
	return &WithdrawalService{db: db, notifications: notifications, m: m}
}

// Create files a new pending request and fans out to every Financial Manager
// plus a submission receipt to the requester.
func (s *WithdrawalService) Create(userID uint, amount float64, method, details string) (*models.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	req := models.WithdrawalRequest{
		UserID:  userID,
		Amount:  amount,
		Method:  method,
		Details: details,
		Status:  models.WithdrawalPending,
	}
	if err := s.db.Create(&req).Error; err != nil {
		return nil, err
	}
	s.countTransition(models.WithdrawalPending)

	s.notifications.NotifyRole(models.RoleFinancialManager,
		"New withdrawal request",
		fmt.Sprintf("A withdrawal of %.2f via %s is awaiting review", amount, method),
		"withdrawal", "/financial-withdrawals-history.html")
	s.notifications.NotifyUser(userID,
		"Withdrawal submitted",
		fmt.Sprintf("Your withdrawal request of %.2f has been submitted", amount),
		"withdrawal", "/withdrawals-history.html")

	return &req, nil
}

// ListOwn returns the requester's own rows, newest first.
func (s *WithdrawalService) ListOwn(userID uint) ([]models.WithdrawalRequest, error) {
	var rows []models.WithdrawalRequest
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// ListAll returns every request joined with the requester's name and member id.
func (s *WithdrawalService) ListAll() ([]dto.WithdrawalQueueItem, error) {
	var rows []dto.WithdrawalQueueItem
	err := s.db.Table("withdrawal_requests").
		Select("withdrawal_requests.*, users.name AS member_name, users.member_id AS member_id").
		Joins("JOIN users ON users.id = withdrawal_requests.user_id").
		Order("withdrawal_requests.created_at DESC, withdrawal_requests.id DESC").
		Scan(&rows).Error
	return rows, err
}

// Review applies an accept or reject decision and stamps the reviewer.
func (s *WithdrawalService) Review(requestID, reviewerID uint, status string) error {
	status = models.NormalizeWithdrawalStatus(status)
	if status != models.WithdrawalAccepted && status != models.WithdrawalRejected {
		return ErrInvalidStatus
	}

	var req models.WithdrawalRequest
	if err := s.db.First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWithdrawalNotFound
		}
		return err
	}

	now := time.Now()
	if err := s.db.Model(&req).Updates(map[string]interface{}{
		"status":      status,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
		"updated_at":  now,
	}).Error; err != nil {
		return err
	}
	s.countTransition(status)

	s.notifications.NotifyUser(req.UserID,
		"Withdrawal "+status,
		fmt.Sprintf("Your withdrawal request of %.2f has been %s", req.Amount, status),
		"withdrawal", "/withdrawals-history.html")
	return nil
}

// MarkPaid moves an accepted request to paid and sends the supplied message to
// the requester. Re-sending against an already paid request is allowed; any
// other current status is rejected.
func (s *WithdrawalService) MarkPaid(requestID, actorID uint, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrMessageRequired
	}

	var req models.WithdrawalRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return err
		}

		current := models.NormalizeWithdrawalStatus(req.Status)
		if current != models.WithdrawalAccepted && current != models.WithdrawalPaid {
			return ErrNotAccepted
		}

		now := time.Now()
		return tx.Model(&req).Updates(map[string]interface{}{
			"status":               models.WithdrawalPaid,
			"notification_message": message,
			"notification_sent_at": now,
			"notification_sent_by": actorID,
			"updated_at":           now,
		}).Error
	})
	if err != nil {
		return err
	}
	s.countTransition(models.WithdrawalPaid)

	s.notifications.NotifyUser(req.UserID, "Withdrawal paid", message,
		"withdrawal", "/withdrawals-history.html")
	return nil
}

// Override lets a Super Admin force any known status; the legacy value
// "approved" is normalized to "accepted" before storing.
func (s *WithdrawalService) Override(requestID, reviewerID uint, status string) error {
	status = models.NormalizeWithdrawalStatus(status)
	switch status {
	case models.WithdrawalPending, models.WithdrawalAccepted, models.WithdrawalRejected, models.WithdrawalPaid:
	default:
		return ErrInvalidStatus
	}

	var req models.WithdrawalRequest
	if err := s.db.First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWithdrawalNotFound
		}
		return err
	}

	now := time.Now()
	if err := s.db.Model(&req).Updates(map[string]interface{}{
		"status":      status,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
		"updated_at":  now,
	}).Error; err != nil {
		return err
	}
	s.countTransition(status)

	if status == models.WithdrawalAccepted || status == models.WithdrawalRejected {
		s.notifications.NotifyUser(req.UserID,
			"Withdrawal "+status,
			fmt.Sprintf("Your withdrawal request of %.2f has been %s", req.Amount, status),
			"withdrawal", "/withdrawals-history.html")
	}
	return nil
}

func (s *WithdrawalService) countTransition(status string) {
	if s.m != nil {
		s.m.WithdrawalTransitions.WithLabelValues(status).Inc()
	}
}
