package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/services"
)

type PayoutHandler struct {
	payouts *services.PayoutService
}

func NewPayoutHandler(payouts *services.PayoutService) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

func (h *PayoutHandler) List(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	rows, err := h.payouts.ListForRole(claims.UserID, claims.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch payouts",
		})
	}
	return c.JSON(rows)
}

// ExportCSV streams the caller's visible payouts as a CSV download.
func (h *PayoutHandler) ExportCSV(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	rows, err := h.payouts.ExportRows(claims.UserID, claims.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to export payouts",
		})
	}
	if len(rows) == 0 {
		return c.Status(fiber.StatusNotFound).SendString("No data to export")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Month", "Year", "Type", "Amount", "Status", "Name", "MemberID"})
	for _, r := range rows {
		_ = w.Write([]string{
			r.Month,
			r.Year,
			r.Type,
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			r.Status,
			r.MemberName,
			r.MemberID,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to export payouts",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", "payouts_export.csv"))
	return c.Send(buf.Bytes())
}
