package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/controller"
	authMw "github.com/Tapiwa2010/zrp-primary-school/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", ctrl.Login)
	grp.Post("/register", ctrl.RegisterStudent)
	grp.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
}
