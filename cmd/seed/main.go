package main

import (
	"log/slog"
	"os"

	"github.com/mykweza/kweza-backend/internal/config"
	"github.com/mykweza/kweza-backend/internal/database"
	"github.com/mykweza/kweza-backend/internal/logging"
	"github.com/mykweza/kweza-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type rosterEntry struct {
	MemberID string
	Name     string
	Role     string
	SubRole  string
	Branch   string
}

// The production roster. Branch defaults to Headquarters when empty.
var productionMembers = []rosterEntry{
	{MemberID: "FON-2025-001", Name: "Felix O. Phiri", Role: models.RoleFounder, SubRole: "Chief Executive Officer (CEO) / Core Founder"},
	{MemberID: "FON-2025-002", Name: "Future I. Cherani", Role: models.RoleFinancialManager, SubRole: "Head of Finance / Co-Founder"},
	{MemberID: "FON-2025-003", Name: "Rodrick Mchochoma", Role: models.RoleAdmin, SubRole: "Marketing Officer"},

	{MemberID: "MEM-2025-001", Name: "Jessie Chumbu", Role: models.RoleCoreTeam, SubRole: "Secretary"},
	{MemberID: "MEM-2025-002", Name: "Yamikani Chimenya", Role: models.RoleCoreTeam, SubRole: "Logistics Officer"},
	{MemberID: "MEM-2025-003", Name: "Alice Magombo", Role: models.RoleCoreTeam, SubRole: "Marketing Support"},
	{MemberID: "MEM-2025-004", Name: "Edwin Msilimba", Role: models.RoleAdmin, SubRole: "ICT Officer I"},
	{MemberID: "MEM-2025-005", Name: "Bridget F. Chinyanga", Role: models.RoleFinancialManager, SubRole: "Compliance Officer"},
	{MemberID: "MEM-2025-006", Name: "William Nkhono", Role: models.RoleCoreTeam, SubRole: "Loan Officer"},
	{MemberID: "MEM-2025-007", Name: "Jabulani B. Mayenda", Role: models.RoleCoreTeam, SubRole: "ICT Officer II"},
	{MemberID: "MEM-2025-008", Name: "Francis Ndeule", Role: models.RoleCoreTeam, SubRole: "Repayment Officer"},

	{MemberID: "CTM-2025-001", Name: "Isha Shaibu", Role: models.RoleCoreTeam, SubRole: "Role Rotation"},
	{MemberID: "CTM-2025-002", Name: "Blessings Shia Phiri", Role: models.RoleAdmin, SubRole: "ICT Officer III - Front-End Developer"},
	{MemberID: "CTM-2026-001", Name: "Ellen Nyilenda", Role: models.RoleCoreTeam, SubRole: "Sales Manager / Marketing Assistant"},
	{MemberID: "CTM-2026-002", Name: "Antony Phiri", Role: models.RoleCoreTeam, SubRole: "ICT Officer IV - Back-End Developer"},
	{MemberID: "CTM-2026-003", Name: "Jane Alex", Role: models.RoleCoreTeam, SubRole: "ICT Officer V - Front-End Developer"},
	{MemberID: "CTM-2026-005", Name: "Takondwa Zephania", Role: models.RoleDevOpsAssistant, SubRole: "Development Operations Assistant"},

	{MemberID: "BM-2026-001", Name: "Matthews Kalombozi", Role: models.RoleBranchManager, SubRole: "Branch Manager", Branch: "Lilongwe"},

	{MemberID: "BSLW-2026-001", Name: "Benson Mussa", Role: models.RoleBranchMember, SubRole: "Loan Officer", Branch: "Lilongwe"},
	{MemberID: "BSLW-2026-002", Name: "Bernard Mussa", Role: models.RoleBranchMember, SubRole: "Recovery Officer", Branch: "Lilongwe"},
	{MemberID: "BSLW-2026-003", Name: "Tayamika Msambati", Role: models.RoleBranchMember, SubRole: "Finance Clerk", Branch: "Lilongwe"},
	{MemberID: "BSLW-2026-004", Name: "George Gunde", Role: models.RoleBranchMember, SubRole: "Marketing Officer", Branch: "Lilongwe"},
}

// Production reset: wipes transactional data and users, then inserts the
// roster with the default PIN. Run once when commissioning an environment.
func main() {
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("clearing transactional data and existing users")
	truncate := []string{
		"weekly_reports",
		"branch_detailed_reports",
		"complaints",
		"notifications",
		"revenue",
		"withdrawal_requests",
		"payouts",
		"users",
	}
	for _, table := range truncate {
		if err := database.DB.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE").Error; err != nil {
			slog.Error("truncate failed", "table", table, "error", err)
			os.Exit(1)
		}
	}

	defaultPinHash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash default PIN", "error", err)
		os.Exit(1)
	}

	slog.Info("inserting production members", "count", len(productionMembers))
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, member := range productionMembers {
			branch := member.Branch
			if branch == "" {
				branch = "Headquarters"
			}
			user := models.User{
				MemberID:  member.MemberID,
				Name:      member.Name,
				Role:      member.Role,
				SubRole:   member.SubRole,
				PIN:       string(defaultPinHash),
				Branch:    branch,
				ThemeMode: "dark",
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("production reset failed", "error", err)
		os.Exit(1)
	}

	var total int64
	database.DB.Model(&models.User{}).Count(&total)
	slog.Info("production reset complete", "active_users", total)
}
