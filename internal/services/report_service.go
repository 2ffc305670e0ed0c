package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProjectNameRequired    = errors.New("Project name is required")
	ErrWorkItemsRequired      = errors.New("At least one completed work item is required")
	ErrReportTitleRequired    = errors.New("Report title is required")
	ErrDetailedReportRequired = errors.New("Detailed report is required")
	ErrReporterNotFound       = errors.New("Developer account not found")
)

var bulletPrefix = regexp.MustCompile(`^[\x{2022}\-]+\s*`)

type ReportService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewReportService(db *gorm.DB, notifications *NotificationService) *ReportService {
	return &ReportService{db: db, notifications: notifications}
}

// normalizeDate accepts YYYY-MM-DD directly and parses anything else it can,
// returning the empty string for unusable input.
func normalizeDate(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", raw); err == nil {
		return raw
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "01/02/2006", "2 January 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// normalizeList trims entries and strips leading bullet markers, dropping
// empties.
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		cleaned := bulletPrefix.ReplaceAllString(strings.TrimSpace(item), "")
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// SubmitWeekly stores a weekly developer report with a point-in-time snapshot
// of the submitter's name and member id.
func (s *ReportService) SubmitWeekly(developerID uint, req *dto.WeeklyReportRequest) (*models.WeeklyReport, error) {
	projectName := strings.TrimSpace(req.ProjectName)
	if projectName == "" {
		return nil, ErrProjectNameRequired
	}

	workItems := normalizeList(req.WorkCompleted)
	if len(workItems) == 0 {
		return nil, ErrWorkItemsRequired
	}

	var developer models.User
	if err := s.db.First(&developer, "id = ?", developerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReporterNotFound
		}
		return nil, err
	}

	reportDate := normalizeDate(req.ReportDate)
	if reportDate == "" {
		reportDate = time.Now().Format("2006-01-02")
	}

	report := models.WeeklyReport{
		DeveloperID:          developer.ID,
		DeveloperName:        developer.Name,
		DeveloperMemberID:    developer.MemberID,
		ProjectName:          projectName,
		ReportDate:           reportDate,
		DateTimeStarted:      strings.TrimSpace(req.DateTimeStarted),
		TargetCompletionDate: normalizeDate(req.TargetCompletionDate),
		WorkCompleted:        strings.Join(workItems, "\n"),
		ChallengesBlockers:   strings.Join(normalizeList(req.ChallengesBlockers), "\n"),
		PlanNextWeek:         strings.Join(normalizeList(req.PlanNextWeek), "\n"),
		ReviewedBy:           strings.TrimSpace(req.ReviewedBy),
		ApprovalDate:         normalizeDate(req.ApprovalDate),
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, err
	}

	s.notifications.NotifyRole(models.RoleFounder,
		"New weekly report",
		developer.Name+" submitted a weekly report for "+projectName,
		"report", "/founder-weekly-reports.html")

	return &report, nil
}

// ListWeekly returns every weekly report with the developer's live identity
// joined alongside the stored snapshot.
func (s *ReportService) ListWeekly() ([]dto.WeeklyReportItem, error) {
	var rows []dto.WeeklyReportItem
	err := s.db.Table("weekly_reports").
		Select("weekly_reports.*, users.name AS current_developer_name, users.member_id AS current_developer_member_id").
		Joins("LEFT JOIN users ON users.id = weekly_reports.developer_id").
		Order("weekly_reports.report_date DESC, weekly_reports.id DESC").
		Scan(&rows).Error
	return rows, err
}

// SubmitBranchRevenue records a plain branch revenue figure attributed to the
// submitter's branch (Global when the user has none).
func (s *ReportService) SubmitBranchRevenue(userID uint, amount float64, month, year string) (*models.Revenue, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReporterNotFound
		}
		return nil, err
	}

	branch := user.Branch
	if branch == "" {
		branch = "Global"
	}

	row := models.Revenue{
		Branch:      branch,
		Amount:      amount,
		Month:       month,
		Year:        year,
		SubmittedBy: &userID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// SubmitBranchDetailed stores a detailed branch report and its paired revenue
// row in one transaction, then notifies the Founders.
func (s *ReportService) SubmitBranchDetailed(userID uint, req *dto.BranchDetailedReportRequest) (*models.BranchDetailedReport, error) {
	if strings.TrimSpace(req.ReportTitle) == "" {
		return nil, ErrReportTitleRequired
	}
	if strings.TrimSpace(req.DetailedReport) == "" {
		return nil, ErrDetailedReportRequired
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReporterNotFound
		}
		return nil, err
	}

	branch := user.Branch
	if branch == "" {
		branch = "Global"
	}

	reportDate := normalizeDate(req.ReportDate)
	if reportDate == "" {
		reportDate = time.Now().Format("2006-01-02")
	}

	report := models.BranchDetailedReport{
		Branch:              branch,
		SubmittedBy:         user.ID,
		SubmittedByName:     user.Name,
		SubmittedByMemberID: user.MemberID,
		ReportTitle:         strings.TrimSpace(req.ReportTitle),
		ReportDate:          reportDate,
		TotalCollection:     req.TotalCollection,
		Highlights:          req.Highlights,
		DetailedReport:      strings.TrimSpace(req.DetailedReport),
		Challenges:          req.Challenges,
		SupportNeeded:       req.SupportNeeded,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		// revenue month/year derive from the report date (YYYY-MM-DD)
		revenue := models.Revenue{
			Branch:      branch,
			Amount:      req.TotalCollection,
			Month:       reportDate[5:7],
			Year:        reportDate[0:4],
			SubmittedBy: &user.ID,
		}
		return tx.Create(&revenue).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifications.NotifyRole(models.RoleFounder,
		"New branch report: "+report.ReportTitle,
		user.Name+" submitted a detailed report for "+branch,
		"report", "/branch-reports-history.html")

	return &report, nil
}

// ListBranchDetailed returns detailed branch reports, newest first.
func (s *ReportService) ListBranchDetailed() ([]models.BranchDetailedReport, error) {
	var rows []models.BranchDetailedReport
	err := s.db.Order("report_date DESC, id DESC").Find(&rows).Error
	return rows, err
}
