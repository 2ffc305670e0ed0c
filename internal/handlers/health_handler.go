package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/database"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports process liveness plus a live database ping and user count.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        "up",
	}

	if err := database.Ping(); err != nil {
		resp.Status = "degraded"
		resp.DB = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}

	h.db.Model(&models.User{}).Count(&resp.Users)
	return c.JSON(resp)
}
