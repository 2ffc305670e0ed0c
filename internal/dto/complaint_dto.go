package dto

import "github.com/mykweza/kweza-backend/internal/models"

type CreateComplaintRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ComplaintStatusRequest struct {
	Status string `json:"status"`
}

// ComplaintQueueItem joins a complaint with the reporter's identity for triage.
type ComplaintQueueItem struct {
	models.Complaint `gorm:"embedded"`
	ReporterName     string `json:"reporter_name"`
	MemberID         string `json:"member_id"`
	ReporterRole     string `json:"reporter_role"`
}
