package models

import "time"

const (
	ComplaintOpen     = "open"
	ComplaintInReview = "in_review"
	ComplaintResolved = "resolved"
)

type Complaint struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReporterID uint      `gorm:"index;not null" json:"reporter_id"`
	Subject    string    `gorm:"size:255" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Status     string    `gorm:"size:20;default:'open'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// AutoMigrate derives the users(id) foreign key from this association.
	Reporter *User `gorm:"foreignKey:ReporterID" json:"-"`
}

// NormalizeComplaintStatus falls back to "open" for unknown values.
func NormalizeComplaintStatus(status string) string {
	switch status {
	case ComplaintOpen, ComplaintInReview, ComplaintResolved:
		return status
	}
	return ComplaintOpen
}
