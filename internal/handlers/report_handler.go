package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) SubmitWeekly(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.WeeklyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.reports.SubmitWeekly(claims.UserID, &req); err != nil {
		return reportError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *ReportHandler) ListWeekly(c *fiber.Ctx) error {
	rows, err := h.reports.ListWeekly()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch weekly reports",
		})
	}
	return c.JSON(rows)
}

func (h *ReportHandler) SubmitBranchRevenue(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.BranchRevenueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.reports.SubmitBranchRevenue(claims.UserID, req.Amount, req.Month, req.Year); err != nil {
		return reportError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *ReportHandler) SubmitBranchDetailed(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.BranchDetailedReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.reports.SubmitBranchDetailed(claims.UserID, &req); err != nil {
		return reportError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *ReportHandler) ListBranchDetailed(c *fiber.Ctx) error {
	rows, err := h.reports.ListBranchDetailed()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch branch reports",
		})
	}
	return c.JSON(rows)
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrWorkItemsRequired),
		errors.Is(err, services.ErrReportTitleRequired),
		errors.Is(err, services.ErrDetailedReportRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrReporterNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to submit report",
	})
}
