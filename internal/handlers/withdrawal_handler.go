package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

type WithdrawalHandler struct {
	withdrawals *services.WithdrawalService
}

func NewWithdrawalHandler(withdrawals *services.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawals: withdrawals}
}

func (h *WithdrawalHandler) Create(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.withdrawals.Create(claims.UserID, req.Amount, req.Method, req.Details); err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit withdrawal request",
		})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ListOwn returns only the caller's rows; the manager queues use ListAll.
func (h *WithdrawalHandler) ListOwn(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	rows, err := h.withdrawals.ListOwn(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch withdrawal requests",
		})
	}
	return c.JSON(rows)
}

func (h *WithdrawalHandler) ListAll(c *fiber.Ctx) error {
	rows, err := h.withdrawals.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch withdrawal requests",
		})
	}
	return c.JSON(rows)
}

func (h *WithdrawalHandler) UpdateStatus(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	var req dto.WithdrawalStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.withdrawals.Review(id, claims.UserID, req.Status); err != nil {
		return withdrawalError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *WithdrawalHandler) Notify(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	var req dto.WithdrawalNotifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.withdrawals.MarkPaid(id, claims.UserID, req.Message); err != nil {
		return withdrawalError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Override is the Super Admin path; it accepts any known status.
func (h *WithdrawalHandler) Override(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	var req dto.WithdrawalStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.withdrawals.Override(id, claims.UserID, req.Status); err != nil {
		return withdrawalError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func withdrawalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrWithdrawalNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrMessageRequired),
		errors.Is(err, services.ErrNotAccepted):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to update withdrawal request",
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
