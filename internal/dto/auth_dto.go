package dto

type LoginRequest struct {
	MemberID string `json:"member_id"`
	PIN      string `json:"pin"`
}

type LoginUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	MemberID  string `json:"member_id"`
	ThemeMode string `json:"theme_mode"`
}

type LoginResponse struct {
	User LoginUser `json:"user"`
}

type UpdateProfileRequest struct {
	Email                string `json:"email"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	ThemeMode            string `json:"theme_mode"`
}

type ThemeRequest struct {
	ThemeMode string `json:"theme_mode"`
}

type ChangePINRequest struct {
	OldPIN string `json:"old_pin"`
	NewPIN string `json:"new_pin"`
}
