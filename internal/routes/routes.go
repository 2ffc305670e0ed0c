package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/config"
	"github.com/mykweza/kweza-backend/internal/handlers"
	"github.com/mykweza/kweza-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	payoutHandler *handlers.PayoutHandler,
	withdrawalHandler *handlers.WithdrawalHandler,
	complaintHandler *handlers.ComplaintHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	superHandler *handlers.SuperHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Login gets a stricter limit: 10 req/min per IP
	api.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	jwt := middleware.JWTProtected(cfg)

	api.Post("/logout", jwt, authHandler.Logout)
	api.Get("/me", jwt, authHandler.Me)

	// Profile
	api.Post("/profile/update", jwt, profileHandler.Update)
	api.Post("/profile/theme", jwt, profileHandler.SetTheme)
	api.Post("/profile/change-pin", jwt, profileHandler.ChangePIN)

	// Payouts (scoping handled in the service by role)
	api.Get("/payouts", jwt, payoutHandler.List)
	api.Get("/export/payouts", jwt, payoutHandler.ExportCSV)

	// Dashboard summary
	api.Get("/admin/summary", jwt, middleware.RequirePermission(auth.PermViewSummary), adminHandler.Summary)

	// Withdrawals — member side
	api.Post("/withdrawals", jwt, withdrawalHandler.Create)
	api.Get("/withdrawals", jwt, withdrawalHandler.ListOwn)

	// Withdrawals — Financial Manager queue
	financial := api.Group("/financial", jwt, middleware.RequirePermission(auth.PermReviewWithdrawals))
	financial.Get("/withdrawals", withdrawalHandler.ListAll)
	financial.Put("/withdrawals/:id/status", withdrawalHandler.UpdateStatus)
	financial.Put("/withdrawals/:id/notify", middleware.RequirePermission(auth.PermPayWithdrawals), withdrawalHandler.Notify)

	// Complaints
	api.Post("/complaints", jwt, complaintHandler.Create)
	devops := api.Group("/devops", jwt)
	devops.Get("/complaints", middleware.RequirePermission(auth.PermTriageComplaints), complaintHandler.List)
	devops.Put("/complaints/:id", middleware.RequirePermission(auth.PermTriageComplaints), complaintHandler.UpdateStatus)
	devops.Post("/weekly-reports", middleware.RequirePermission(auth.PermSubmitWeeklyReport), reportHandler.SubmitWeekly)

	// Branch reporting (branch comes from the submitter's record)
	api.Post("/branch/report", jwt, reportHandler.SubmitBranchRevenue)
	api.Post("/branch/detailed-reports", jwt, middleware.RequirePermission(auth.PermSubmitBranchReport), reportHandler.SubmitBranchDetailed)

	// Founder / Financial Manager reading surface
	founder := api.Group("/founder", jwt)
	founder.Get("/weekly-reports", middleware.RequirePermission(auth.PermReadFounderReports), reportHandler.ListWeekly)
	founder.Get("/branch-reports", middleware.RequirePermission(auth.PermReadFounderReports), reportHandler.ListBranchDetailed)
	founder.Get("/members", middleware.RequirePermission(auth.PermManageCompensation), adminHandler.CompensationMembers)
	founder.Put("/members/:id/compensation", middleware.RequirePermission(auth.PermManageCompensation), adminHandler.SetCompensation)

	// Notifications
	api.Get("/notifications", jwt, notificationHandler.List)
	api.Get("/notifications/unread-count", jwt, notificationHandler.UnreadCount)
	api.Put("/notifications/read-all", jwt, notificationHandler.MarkAllRead)
	api.Put("/notifications/:id/read", jwt, notificationHandler.MarkRead)

	// Super admin console
	super := api.Group("/super", jwt, middleware.RequirePermission(auth.PermSuperAdmin))
	super.Get("/members", superHandler.ListMembers)
	super.Post("/users", superHandler.CreateUser)
	super.Put("/users/:id", superHandler.UpdateUser)
	super.Delete("/users/:id", superHandler.DeleteUser)
	super.Get("/payouts", superHandler.ListPayouts)
	super.Post("/payouts", superHandler.CreatePayout)
	super.Put("/payouts/:id", superHandler.UpdatePayout)
	super.Delete("/payouts/:id", superHandler.DeletePayout)
	super.Get("/revenue", superHandler.ListRevenue)
	super.Post("/revenue", superHandler.CreateRevenue)
	super.Post("/toggle-lrm", superHandler.ToggleLowRevenueMode)
	super.Get("/withdrawals", withdrawalHandler.ListAll)
	super.Put("/withdrawals/:id", withdrawalHandler.Override)
}
