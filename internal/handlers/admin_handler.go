package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

// AdminHandler serves the dashboard summary and the compensation screen.
type AdminHandler struct {
	revenue *services.RevenueService
	users   *services.UserService
}

func NewAdminHandler(revenue *services.RevenueService, users *services.UserService) *AdminHandler {
	return &AdminHandler{revenue: revenue, users: users}
}

func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.revenue.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute summary",
		})
	}
	return c.JSON(summary)
}

func (h *AdminHandler) CompensationMembers(c *fiber.Ctx) error {
	rows, err := h.users.CompensationMembers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch members",
		})
	}
	return c.JSON(rows)
}

func (h *AdminHandler) SetCompensation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.CompensationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.users.SetCompensation(id, req.Salary, req.Bonus, req.Dividends); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCompensation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrCompensationUserAbsent):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update compensation",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
