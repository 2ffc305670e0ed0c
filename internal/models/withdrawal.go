package models

import (
	"strings"
	"time"
)

// Withdrawal lifecycle: pending -> accepted -> paid, or pending -> rejected.
const (
	WithdrawalPending  = "pending"
	WithdrawalAccepted = "accepted"
	WithdrawalRejected = "rejected"
	WithdrawalPaid     = "paid"
)

type WithdrawalRequest struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"index;not null" json:"user_id"`
	Amount              float64    `gorm:"not null" json:"amount"`
	Method              string     `gorm:"size:100;not null" json:"method"`
	Details             string     `gorm:"type:text" json:"details"`
	Status              string     `gorm:"size:20;default:'pending'" json:"status"`
	ReviewedBy          *uint      `json:"reviewed_by"`
	ReviewedAt          *time.Time `json:"reviewed_at"`
	NotificationMessage string     `gorm:"type:text" json:"notification_message"`
	NotificationSentAt  *time.Time `json:"notification_sent_at"`
	NotificationSentBy  *uint      `json:"notification_sent_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	// AutoMigrate derives the users(id) foreign keys from these associations.
	User               *User `gorm:"foreignKey:UserID" json:"-"`
	Reviewer           *User `gorm:"foreignKey:ReviewedBy" json:"-"`
	NotificationSender *User `gorm:"foreignKey:NotificationSentBy" json:"-"`
}

// NormalizeWithdrawalStatus lowercases the input and maps the legacy value
// "approved" (stored by older clients) to "accepted".
func NormalizeWithdrawalStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "approved" {
		return WithdrawalAccepted
	}
	return s
}
