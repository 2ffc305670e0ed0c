package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	rows, err := h.notifications.List(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch notifications",
		})
	}
	return c.JSON(rows)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	count, err := h.notifications.UnreadCount(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to count notifications",
		})
	}
	return c.JSON(dto.UnreadCountResponse{Count: count})
}

// MarkRead is owner-scoped; marking someone else's notification is a no-op.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid notification ID",
		})
	}

	if err := h.notifications.MarkRead(claims.UserID, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update notification",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid token",
		})
	}

	if err := h.notifications.MarkAllRead(claims.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update notifications",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
