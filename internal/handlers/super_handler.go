package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

// SuperHandler backs the super-admin console: user CRUD, payout and revenue
// management, and the low revenue mode switch.
type SuperHandler struct {
	users    *services.UserService
	payouts  *services.PayoutService
	revenue  *services.RevenueService
	settings *services.SettingsService
}

func NewSuperHandler(users *services.UserService, payouts *services.PayoutService, revenue *services.RevenueService, settings *services.SettingsService) *SuperHandler {
	return &SuperHandler{users: users, payouts: payouts, revenue: revenue, settings: settings}
}

func (h *SuperHandler) ListMembers(c *fiber.Ctx) error {
	users, err := h.users.ListMembers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch members",
		})
	}
	return c.JSON(users)
}

func (h *SuperHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.users.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserFieldsRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrMemberIDTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create user",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *SuperHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.users.Update(id, &req); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update user",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *SuperHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.users.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete user",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *SuperHandler) ListPayouts(c *fiber.Ctx) error {
	rows, err := h.payouts.ListWithMembers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch payouts",
		})
	}
	return c.JSON(rows)
}

func (h *SuperHandler) CreatePayout(c *fiber.Ctx) error {
	var req dto.PayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	payout, err := h.payouts.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create payout",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(payout)
}

func (h *SuperHandler) UpdatePayout(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid payout ID",
		})
	}

	var req dto.PayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.payouts.Update(id, &req); err != nil {
		if errors.Is(err, services.ErrPayoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update payout",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *SuperHandler) DeletePayout(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid payout ID",
		})
	}

	if err := h.payouts.Delete(id); err != nil {
		if errors.Is(err, services.ErrPayoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete payout",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *SuperHandler) ListRevenue(c *fiber.Ctx) error {
	rows, err := h.revenue.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch revenue",
		})
	}
	return c.JSON(rows)
}

func (h *SuperHandler) CreateRevenue(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	var req dto.RevenueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Amount must be greater than zero",
		})
	}

	row, err := h.revenue.Create(req.Amount, req.Branch, req.Month, req.Year, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to record revenue",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// ToggleLowRevenueMode flips the advisory payout-pressure flag. The value
// arrives as a boolean string to match the settings storage format.
func (h *SuperHandler) ToggleLowRevenueMode(c *fiber.Ctx) error {
	var req dto.ToggleLRMRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	enabled := req.Value == "true"
	if err := h.settings.SetLowRevenueMode(enabled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update setting",
		})
	}
	return c.JSON(dto.ToggleLRMResponse{Success: true, LowRevenueMode: enabled})
}
