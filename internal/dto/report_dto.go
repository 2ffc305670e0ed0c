package dto

import (
	"encoding/json"
	"strings"

	"github.com/mykweza/kweza-backend/internal/models"
)

// StringList accepts either a JSON array of strings or a newline-separated
// string, matching what the report forms submit.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = strings.Split(raw, "\n")
	return nil
}

type WeeklyReportRequest struct {
	ProjectName          string     `json:"project_name"`
	ReportDate           string     `json:"report_date"`
	DateTimeStarted      string     `json:"date_time_started"`
	TargetCompletionDate string     `json:"target_completion_date"`
	WorkCompleted        StringList `json:"work_completed"`
	ChallengesBlockers   StringList `json:"challenges_blockers"`
	PlanNextWeek         StringList `json:"plan_next_week"`
	ReviewedBy           string     `json:"reviewed_by"`
	ApprovalDate         string     `json:"approval_date"`
}

// WeeklyReportItem pairs the stored snapshot with the developer's live identity.
type WeeklyReportItem struct {
	models.WeeklyReport      `gorm:"embedded"`
	CurrentDeveloperName     string `json:"current_developer_name"`
	CurrentDeveloperMemberID string `json:"current_developer_member_id"`
}

type BranchRevenueRequest struct {
	Amount float64 `json:"amount"`
	Month  string  `json:"month"`
	Year   string  `json:"year"`
}

type BranchDetailedReportRequest struct {
	ReportTitle     string  `json:"report_title"`
	ReportDate      string  `json:"report_date"`
	TotalCollection float64 `json:"total_collection"`
	Highlights      string  `json:"highlights"`
	DetailedReport  string  `json:"detailed_report"`
	Challenges      string  `json:"challenges"`
	SupportNeeded   string  `json:"support_needed"`
}
