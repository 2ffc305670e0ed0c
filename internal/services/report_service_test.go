package services

import (
	"errors"
	"testing"

	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-03-15", "2026-03-15"},
		{"2026-03-15T10:30:00Z", "2026-03-15"},
		{"03/15/2026", "2026-03-15"},
		{"15 March 2026", "2026-03-15"},
		{"not a date", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := normalizeDate(tc.in); got != tc.want {
			t.Errorf("normalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeList_StripsBulletsAndEmpties(t *testing.T) {
	got := normalizeList([]string{"• Fixed login", "- Deployed API", "   ", "•", "plain item"})
	want := []string{"Fixed login", "Deployed API", "plain item"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d items, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestReportService_SubmitWeekly_SnapshotsIdentity(t *testing.T) {
	db := setupTestDB(t)
	service := NewReportService(db, NewNotificationService(db, nil))
	dev := createUser(t, db, "CTM-2026-005", "Takondwa Zephania", models.RoleDevOpsAssistant)
	founder := createUser(t, db, "FON-2025-001", "Felix O. Phiri", models.RoleFounder)

	report, err := service.SubmitWeekly(dev.ID, &dto.WeeklyReportRequest{
		ProjectName:   "Loan Portal",
		ReportDate:    "2026-08-28",
		WorkCompleted: dto.StringList{"• Shipped repayment screen", "- Fixed export"},
	})
	if err != nil {
		t.Fatalf("SubmitWeekly failed: %v", err)
	}
	if report.DeveloperName != "Takondwa Zephania" || report.DeveloperMemberID != "CTM-2026-005" {
		t.Errorf("Expected identity snapshot, got %q/%q", report.DeveloperName, report.DeveloperMemberID)
	}
	if report.WorkCompleted != "Shipped repayment screen\nFixed export" {
		t.Errorf("Expected joined work items, got %q", report.WorkCompleted)
	}

	// Rename the developer: the snapshot stays, the live join moves
	db.Model(&models.User{}).Where("id = ?", dev.ID).Update("name", "T. Zephania-Banda")

	rows, err := service.ListWeekly()
	if err != nil {
		t.Fatalf("ListWeekly failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].DeveloperName != "Takondwa Zephania" {
		t.Errorf("Expected snapshot preserved, got %q", rows[0].DeveloperName)
	}
	if rows[0].CurrentDeveloperName != "T. Zephania-Banda" {
		t.Errorf("Expected live name joined, got %q", rows[0].CurrentDeveloperName)
	}

	var founderNotices int64
	db.Model(&models.Notification{}).Where("user_id = ?", founder.ID).Count(&founderNotices)
	if founderNotices != 1 {
		t.Errorf("Expected Founder notified once, got %d", founderNotices)
	}
}

func TestReportService_SubmitWeekly_Validation(t *testing.T) {
	db := setupTestDB(t)
	service := NewReportService(db, NewNotificationService(db, nil))
	dev := createUser(t, db, "CTM-2026-005", "Takondwa Zephania", models.RoleDevOpsAssistant)

	_, err := service.SubmitWeekly(dev.ID, &dto.WeeklyReportRequest{
		WorkCompleted: dto.StringList{"item"},
	})
	if !errors.Is(err, ErrProjectNameRequired) {
		t.Errorf("Expected ErrProjectNameRequired, got %v", err)
	}

	_, err = service.SubmitWeekly(dev.ID, &dto.WeeklyReportRequest{
		ProjectName:   "Loan Portal",
		WorkCompleted: dto.StringList{"  ", "•"},
	})
	if !errors.Is(err, ErrWorkItemsRequired) {
		t.Errorf("Expected ErrWorkItemsRequired for bullet-only items, got %v", err)
	}
}

func TestReportService_SubmitBranchDetailed_WritesPairedRevenue(t *testing.T) {
	db := setupTestDB(t)
	service := NewReportService(db, NewNotificationService(db, nil))
	manager := createUser(t, db, "BM-2026-001", "Matthews Kalombozi", models.RoleBranchManager)
	db.Model(&models.User{}).Where("id = ?", manager.ID).Update("branch", "Lilongwe")

	report, err := service.SubmitBranchDetailed(manager.ID, &dto.BranchDetailedReportRequest{
		ReportTitle:     "August collections",
		ReportDate:      "2026-08-30",
		TotalCollection: 125000,
		DetailedReport:  "Collections were above target.",
	})
	if err != nil {
		t.Fatalf("SubmitBranchDetailed failed: %v", err)
	}
	if report.Branch != "Lilongwe" {
		t.Errorf("Expected branch Lilongwe, got %q", report.Branch)
	}
	if report.SubmittedByName != "Matthews Kalombozi" {
		t.Errorf("Expected submitter snapshot, got %q", report.SubmittedByName)
	}

	var revenue models.Revenue
	if err := db.First(&revenue, "branch = ?", "Lilongwe").Error; err != nil {
		t.Fatalf("Expected paired revenue row: %v", err)
	}
	if revenue.Amount != 125000 {
		t.Errorf("Expected amount 125000, got %v", revenue.Amount)
	}
	if revenue.Month != "08" || revenue.Year != "2026" {
		t.Errorf("Expected month/year from report date, got %s/%s", revenue.Month, revenue.Year)
	}
}

func TestReportService_SubmitBranchDetailed_Validation(t *testing.T) {
	db := setupTestDB(t)
	service := NewReportService(db, NewNotificationService(db, nil))
	manager := createUser(t, db, "BM-2026-001", "Matthews Kalombozi", models.RoleBranchManager)

	_, err := service.SubmitBranchDetailed(manager.ID, &dto.BranchDetailedReportRequest{
		DetailedReport: "text",
	})
	if !errors.Is(err, ErrReportTitleRequired) {
		t.Errorf("Expected ErrReportTitleRequired, got %v", err)
	}

	_, err = service.SubmitBranchDetailed(manager.ID, &dto.BranchDetailedReportRequest{
		ReportTitle: "Title",
	})
	if !errors.Is(err, ErrDetailedReportRequired) {
		t.Errorf("Expected ErrDetailedReportRequired, got %v", err)
	}
}

func TestReportService_SubmitBranchRevenue_DefaultsBranchToGlobal(t *testing.T) {
	db := setupTestDB(t)
	service := NewReportService(db, NewNotificationService(db, nil))
	member := createUser(t, db, "MEM-2025-001", "Jessie Chumbu", models.RoleCoreTeam)
	db.Model(&models.User{}).Where("id = ?", member.ID).Update("branch", "")

	row, err := service.SubmitBranchRevenue(member.ID, 5000, "08", "2026")
	if err != nil {
		t.Fatalf("SubmitBranchRevenue failed: %v", err)
	}
	if row.Branch != "Global" {
		t.Errorf("Expected Global branch fallback, got %q", row.Branch)
	}
	if row.SubmittedBy == nil || *row.SubmittedBy != member.ID {
		t.Errorf("Expected submitter attribution, got %v", row.SubmittedBy)
	}
}
