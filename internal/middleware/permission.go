package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
)

// RequirePermission evaluates the capability table against the authenticated
// role. Runs after JWTProtected.
func RequirePermission(perm auth.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := auth.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !auth.Can(claims.Role, perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: auth.RequiredLabel(perm) + " access required",
			})
		}

		return c.Next()
	}
}
