package auth

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded identity carried by the session cookie.
type Claims struct {
	UserID   uint
	MemberID string
	Role     string
}

// FromContext extracts the authenticated claims placed in Fiber locals by the
// JWT middleware.
func FromContext(c *fiber.Ctx) (*Claims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("missing sub claim")
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, errors.New("malformed sub claim")
	}

	memberID, _ := mapClaims["member_id"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserID:   uint(id),
		MemberID: memberID,
		Role:     role,
	}, nil
}
