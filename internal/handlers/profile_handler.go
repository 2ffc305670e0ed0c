package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

type ProfileHandler struct {
	authService *services.AuthService
}

func NewProfileHandler(authService *services.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.UpdateProfile(claims.UserID, req.Email, req.NotificationsEnabled, req.ThemeMode); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *ProfileHandler) SetTheme(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	mode, err := h.authService.SetTheme(claims.UserID, req.ThemeMode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update theme",
		})
	}
	return c.JSON(fiber.Map{"success": true, "theme_mode": mode})
}

func (h *ProfileHandler) ChangePIN(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ChangePINRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.ChangePIN(claims.UserID, req.OldPIN, req.NewPIN); err != nil {
		switch {
		case errors.Is(err, services.ErrIncorrectPIN):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to change PIN",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
