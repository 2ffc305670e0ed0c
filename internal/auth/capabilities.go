package auth

import "github.com/mykweza/kweza-backend/internal/models"

// Permission names an operation group a role may perform. Route guards check
// one permission instead of comparing role strings per handler, so adding a
// role means touching this table only.
type Permission string

const (
	PermSuperAdmin         Permission = "super-admin"
	PermReviewWithdrawals  Permission = "review-withdrawals"
	PermPayWithdrawals     Permission = "pay-withdrawals"
	PermManageCompensation Permission = "manage-compensation"
	PermTriageComplaints   Permission = "triage-complaints"
	PermSubmitWeeklyReport Permission = "submit-weekly-report"
	PermSubmitBranchReport Permission = "submit-branch-report"
	PermReadFounderReports Permission = "read-founder-reports"
	PermViewSummary        Permission = "view-summary"
	PermViewAllPayouts     Permission = "view-all-payouts"
)

var capabilities = map[string][]Permission{
	models.RoleSuperAdmin: {
		PermSuperAdmin,
		PermReviewWithdrawals,
		PermManageCompensation,
		PermViewSummary,
		PermViewAllPayouts,
	},
	models.RoleAdmin: {
		PermViewSummary,
		PermViewAllPayouts,
	},
	// Only Financial Managers move accepted requests to paid; the Super Admin
	// override path stamps statuses directly instead.
	models.RoleFinancialManager: {
		PermReviewWithdrawals,
		PermPayWithdrawals,
		PermManageCompensation,
		PermReadFounderReports,
	},
	models.RoleFounder: {
		PermReadFounderReports,
	},
	models.RoleDevOpsAssistant: {
		PermTriageComplaints,
		PermSubmitWeeklyReport,
	},
	models.RoleBranchManager: {
		PermSubmitBranchReport,
	},
}

// requiredLabel preserves the wording clients already show on guard failures.
var requiredLabel = map[Permission]string{
	PermSuperAdmin:         models.RoleSuperAdmin,
	PermReviewWithdrawals:  models.RoleFinancialManager,
	PermPayWithdrawals:     models.RoleFinancialManager,
	PermManageCompensation: models.RoleFinancialManager,
	PermTriageComplaints:   models.RoleDevOpsAssistant,
	PermSubmitWeeklyReport: models.RoleDevOpsAssistant,
	PermSubmitBranchReport: models.RoleBranchManager,
	PermReadFounderReports: models.RoleFounder,
	PermViewSummary:        models.RoleAdmin,
}

// Can reports whether the role holds the permission.
func Can(role string, perm Permission) bool {
	for _, p := range capabilities[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// RequiredLabel returns the role named in the guard-failure message.
func RequiredLabel(perm Permission) string {
	if label, ok := requiredLabel[perm]; ok {
		return label
	}
	return string(perm)
}
