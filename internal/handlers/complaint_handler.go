package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

type ComplaintHandler struct {
	complaints *services.ComplaintService
}

func NewComplaintHandler(complaints *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.complaints.Create(claims.UserID, req.Subject, req.Message); err != nil {
		if errors.Is(err, services.ErrComplaintMessageRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit complaint",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	rows, err := h.complaints.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch complaints",
		})
	}
	return c.JSON(rows)
}

func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid complaint ID",
		})
	}

	var req dto.ComplaintStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.complaints.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update complaint",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
