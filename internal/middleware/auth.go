package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/config"
	"github.com/mykweza/kweza-backend/internal/dto"
)

// JWTProtected verifies the session cookie. A missing cookie and a bad or
// expired signature surface as distinct 401 messages, like the original API.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:token",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Invalid token"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				message = "Unauthorized"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: message,
			})
		},
	})
}
