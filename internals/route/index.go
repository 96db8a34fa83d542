package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/constants"
	academicsRoute "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/route"
	accountsRoute "github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/route"
	feesRoute "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/route"
	authMw "github.com/Tapiwa2010/zrp-primary-school/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under its access group:
//
//	/api/auth       public (login, register)
//	/api            any authenticated user
//	/api/student    student self-service
//	/api/admin      admin/bursar operations
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)
	accountsRoute.AuthRoutes(app, db)

	authed := app.Group("/api", authMw.AuthMiddleware(db))
	feesRoute.FeesSharedRoutes(authed, db)

	student := app.Group("/api/student",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorStudent("student fee services"), constants.StudentOnly...),
	)
	feesRoute.FeesStudentRoutes(student, db)

	admin := app.Group("/api/admin",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("school administration"), constants.AdminOnly...),
	)
	academicsRoute.AcademicsAdminRoutes(admin, db)
	feesRoute.FeesAdminRoutes(admin, db)
}
