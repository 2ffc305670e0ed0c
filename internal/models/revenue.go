package models

import "time"

// Revenue rows are append-only; branch submissions and super-admin entries both
// land here.
type Revenue struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Branch      string    `gorm:"size:100;not null" json:"branch"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Month       string    `gorm:"size:20;not null" json:"month"`
	Year        string    `gorm:"size:10;not null" json:"year"`
	SubmittedBy *uint     `json:"submitted_by"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`

	// AutoMigrate derives the users(id) foreign key from this association.
	Submitter *User `gorm:"foreignKey:SubmittedBy" json:"-"`
}

func (Revenue) TableName() string { return "revenue" }
