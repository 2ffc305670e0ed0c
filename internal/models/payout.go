package models

import "time"

type Payout struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	Type       string     `gorm:"size:50;not null" json:"type"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Status     string     `gorm:"size:50;default:'pending'" json:"status"`
	Month      string     `gorm:"size:20;not null" json:"month"`
	Year       string     `gorm:"size:10;not null" json:"year"`
	ApprovedBy *uint      `json:"approved_by"`
	PaidAt     *time.Time `json:"paid_at"`
	CreatedAt  time.Time  `json:"created_at"`

	// AutoMigrate derives the users(id) foreign key from this association.
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
