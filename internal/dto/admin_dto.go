package dto

import "github.com/mykweza/kweza-backend/internal/models"

// SummaryResponse mirrors the dashboard summary payload field names.
type SummaryResponse struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalPayouts   float64 `json:"totalPayouts"`
	TotalPaid      float64 `json:"totalPaid"`
	RemainingFunds float64 `json:"remainingFunds"`
	LowRevenueMode bool    `json:"lowRevenueMode"`
}

type CreateUserRequest struct {
	MemberID            string  `json:"member_id"`
	Name                string  `json:"name"`
	Role                string  `json:"role"`
	SubRole             string  `json:"sub_role"`
	PIN                 string  `json:"pin"`
	Branch              string  `json:"branch"`
	Email               string  `json:"email"`
	CanReceiveDividends bool    `json:"can_receive_dividends"`
	DividendFeePaid     bool    `json:"dividend_fee_paid"`
	Salary              float64 `json:"salary"`
	Bonus               float64 `json:"bonus"`
	Dividends           float64 `json:"dividends"`
}

type UpdateUserRequest struct {
	Name                string  `json:"name"`
	Role                string  `json:"role"`
	SubRole             string  `json:"sub_role"`
	Branch              string  `json:"branch"`
	Email               string  `json:"email"`
	CanReceiveDividends bool    `json:"can_receive_dividends"`
	DividendFeePaid     bool    `json:"dividend_fee_paid"`
	Salary              float64 `json:"salary"`
	Bonus               float64 `json:"bonus"`
	Dividends           float64 `json:"dividends"`
}

type PayoutRequest struct {
	UserID uint    `json:"user_id"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Month  string  `json:"month"`
	Year   string  `json:"year"`
	Status string  `json:"status"`
}

// PayoutWithMember joins a payout with the member's identity.
type PayoutWithMember struct {
	models.Payout `gorm:"embedded"`
	MemberName    string `json:"member_name"`
	MemberID      string `json:"member_id"`
}

type RevenueRequest struct {
	Amount float64 `json:"amount"`
	Branch string  `json:"branch"`
	Month  string  `json:"month"`
	Year   string  `json:"year"`
}

// RevenueWithSubmitter joins a revenue row with the submitter's current name.
type RevenueWithSubmitter struct {
	models.Revenue `gorm:"embedded"`
	SubmitterName  string `json:"submitter_name"`
}

type ToggleLRMRequest struct {
	Value string `json:"value"`
}

type ToggleLRMResponse struct {
	Success        bool `json:"success"`
	LowRevenueMode bool `json:"lowRevenueMode"`
}

type CompensationRequest struct {
	Salary    float64 `json:"salary"`
	Bonus     float64 `json:"bonus"`
	Dividends float64 `json:"dividends"`
}

// CompensationMember is the trimmed user row shown on the compensation screen.
type CompensationMember struct {
	ID        uint    `json:"id"`
	MemberID  string  `json:"member_id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Branch    string  `json:"branch"`
	Salary    float64 `json:"salary"`
	Bonus     float64 `json:"bonus"`
	Dividends float64 `json:"dividends"`
}
