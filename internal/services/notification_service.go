package services

import (
	"log/slog"
	"strings"
	"time"

	"github.com/mykweza/kweza-backend/internal/metrics"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

// Length caps applied before insert; longer text is cut with an ellipsis.
const (
	maxNotificationTitle   = 80
	maxNotificationMessage = 500
)

// NotificationService inserts notification rows as a side effect of other
// writes. Dispatch is fire-and-forget: a failed insert is logged and dropped,
// never propagated to the caller, so the triggering action cannot fail or roll
// back because of it.
type NotificationService struct {
	db *gorm.DB
	m  *metrics.Metrics
}

func NewNotificationService(db *gorm.DB, m *metrics.Metrics) *NotificationService {
	return &NotificationService{db: db, m: m}
}

// NotifyUser delivers a single notification to one recipient.
func (s *NotificationService) NotifyUser(userID uint, title, message, notificationType, linkURL string) {
	s.insert([]uint{userID}, title, message, notificationType, linkURL)
}

// NotifyRole fans out to every user currently holding the role. Membership is
// resolved at send time, not cached.
func (s *NotificationService) NotifyRole(role string, title, message, notificationType, linkURL string) {
	var ids []uint
	if err := s.db.Model(&models.User{}).Where("role = ?", role).Pluck("id", &ids).Error; err != nil {
		slog.Error("notification fan-out role lookup failed", "role", role, "error", err)
		if s.m != nil {
			s.m.NotificationFailures.Inc()
		}
		return
	}
	s.insert(ids, title, message, notificationType, linkURL)
}

func (s *NotificationService) insert(recipients []uint, title, message, notificationType, linkURL string) {
	if len(recipients) == 0 {
		return
	}
	if notificationType == "" {
		notificationType = "general"
	}

	rows := make([]models.Notification, 0, len(recipients))
	for _, id := range recipients {
		rows = append(rows, models.Notification{
			UserID:           id,
			Title:            truncate(title, maxNotificationTitle),
			Message:          truncate(message, maxNotificationMessage),
			NotificationType: notificationType,
			LinkURL:          linkURL,
		})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		slog.Error("notification dispatch failed",
			"type", notificationType, "recipients", len(recipients), "error", err)
		if s.m != nil {
			s.m.NotificationFailures.Inc()
		}
		return
	}
	if s.m != nil {
		s.m.NotificationsSent.WithLabelValues(notificationType).Add(float64(len(rows)))
	}
}

// truncate collapses whitespace, trims, and cuts to max runes with an ellipsis.
func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// List returns the recipient's latest 50 notifications.
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	var rows []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(50).
		Find(&rows).Error
	return rows, err
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flags one notification as read, scoped to the owner.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	now := time.Now()
	return s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	now := time.Now()
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}
