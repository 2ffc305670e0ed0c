package models

import "time"

// Notification rows are created only as side effects of other writes; clients
// poll them, nothing pushes.
type Notification struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index:idx_notifications_user_created;index:idx_notifications_user_read" json:"user_id"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Message          string     `gorm:"type:text;not null" json:"message"`
	NotificationType string     `gorm:"size:50;default:'general'" json:"notification_type"`
	LinkURL          string     `gorm:"size:255" json:"link_url"`
	IsRead           bool       `gorm:"default:false;index:idx_notifications_user_read" json:"is_read"`
	ReadAt           *time.Time `json:"read_at"`
	CreatedAt        time.Time  `gorm:"index:idx_notifications_user_created,sort:desc" json:"created_at"`

	// AutoMigrate derives the users(id) foreign key from this association.
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
