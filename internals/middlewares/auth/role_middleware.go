package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RoleMiddlewareWithCustomError validates the role claim with a custom message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles is a shortcut for cleaner route wiring
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
