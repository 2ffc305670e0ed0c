package models

import "time"

// Role values are exact strings; the member_id is the human-facing business key
// while ID stays the internal numeric key.
const (
	RoleSuperAdmin       = "Super Admin"
	RoleAdmin            = "Admin"
	RoleFounder          = "Founder"
	RoleFinancialManager = "Financial Manager"
	RoleBranchManager    = "Branch Manager"
	RoleBranchMember     = "Branch Member"
	RoleCoreTeam         = "Core Team"
	RoleDevOpsAssistant  = "Dev Operations Assistant"
	RoleMember           = "Member"
)

type User struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	MemberID             string    `gorm:"size:50;uniqueIndex;not null" json:"member_id"`
	Name                 string    `gorm:"size:255;not null" json:"name"`
	Role                 string    `gorm:"size:50;not null" json:"role"`
	SubRole              string    `gorm:"size:255" json:"sub_role"`
	PIN                  string    `gorm:"column:pin;not null" json:"-"`
	Email                string    `gorm:"size:255" json:"email"`
	Branch               string    `gorm:"size:100" json:"branch"`
	NotificationsEnabled bool      `gorm:"default:true" json:"notifications_enabled"`
	ThemeMode            string    `gorm:"size:10;default:'dark'" json:"theme_mode"`
	CanReceiveDividends  bool      `gorm:"default:false" json:"can_receive_dividends"`
	DividendFeePaid      bool      `gorm:"default:false" json:"dividend_fee_paid"`
	Salary               float64   `gorm:"default:0" json:"salary"`
	Bonus                float64   `gorm:"default:0" json:"bonus"`
	Dividends            float64   `gorm:"default:0" json:"dividends"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
