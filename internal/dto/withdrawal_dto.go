package dto

import "github.com/mykweza/kweza-backend/internal/models"

type CreateWithdrawalRequest struct {
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Details string  `json:"details"`
}

type WithdrawalStatusRequest struct {
	Status string `json:"status"`
}

type WithdrawalNotifyRequest struct {
	Message string `json:"message"`
}

// WithdrawalQueueItem is a withdrawal row joined with the requester's identity,
// returned to Financial Managers and Super Admins.
type WithdrawalQueueItem struct {
	models.WithdrawalRequest `gorm:"embedded"`
	MemberName               string `json:"member_name"`
	MemberID                 string `json:"member_id"`
}
