package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads user_id from c.Locals("user_id").
// Returns 401 when not logged in, 400 when the value is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

// GetRoleFromToken reads the role claim stashed in Locals by the auth middleware.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing role information")
	}
	return role, nil
}
