package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "github.com/Tapiwa2010/zrp-primary-school/internals/databases"
)

// BaseRoutes exposes liveness endpoints; these sit outside auth so load
// balancers can probe them.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "zrp-primary-school fee management",
			"status":  "running",
		})
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := database.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
