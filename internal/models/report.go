package models

import "time"

// WeeklyReport snapshots the developer's name and member id at submission time.
// The snapshot is intentionally not kept in sync with later user edits.
type WeeklyReport struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	DeveloperID          uint      `gorm:"index;not null" json:"developer_id"`
	DeveloperName        string    `gorm:"size:255;not null" json:"developer_name"`
	DeveloperMemberID    string    `gorm:"size:50" json:"developer_member_id"`
	ProjectName          string    `gorm:"size:255;not null" json:"project_name"`
	ReportDate           string    `gorm:"size:10" json:"report_date"`
	DateTimeStarted      string    `gorm:"size:100" json:"date_time_started"`
	TargetCompletionDate string    `gorm:"size:10" json:"target_completion_date"`
	WorkCompleted        string    `gorm:"type:text" json:"work_completed"`
	ChallengesBlockers   string    `gorm:"type:text" json:"challenges_blockers"`
	PlanNextWeek         string    `gorm:"type:text" json:"plan_next_week"`
	ReviewedBy           string    `gorm:"size:255" json:"reviewed_by"`
	ApprovalDate         string    `gorm:"size:10" json:"approval_date"`
	CreatedAt            time.Time `json:"created_at"`

	// AutoMigrate derives the users(id) foreign key from this association.
	Developer *User `gorm:"foreignKey:DeveloperID" json:"-"`
}

// BranchDetailedReport carries the same snapshot semantics for the submitter.
type BranchDetailedReport struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Branch              string    `gorm:"size:100;not null" json:"branch"`
	SubmittedBy         uint      `gorm:"index;not null" json:"submitted_by"`
	SubmittedByName     string    `gorm:"size:255;not null" json:"submitted_by_name"`
	SubmittedByMemberID string    `gorm:"size:50" json:"submitted_by_member_id"`
	ReportTitle         string    `gorm:"size:255;not null" json:"report_title"`
	ReportDate          string    `gorm:"size:10;not null" json:"report_date"`
	TotalCollection     float64   `gorm:"not null" json:"total_collection"`
	Highlights          string    `gorm:"type:text" json:"highlights"`
	DetailedReport      string    `gorm:"type:text;not null" json:"detailed_report"`
	Challenges          string    `gorm:"type:text" json:"challenges"`
	SupportNeeded       string    `gorm:"type:text" json:"support_needed"`
	CreatedAt           time.Time `json:"created_at"`

	// AutoMigrate derives the users(id) foreign key from this association.
	Submitter *User `gorm:"foreignKey:SubmittedBy" json:"-"`
}
