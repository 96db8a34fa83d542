package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Tapiwa2010/zrp-primary-school/internals/middlewares/logger"
)

// SetupMiddlewares installs the base middleware chain
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
