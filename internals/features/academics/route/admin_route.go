package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/controller"
)

// AcademicsAdminRoutes wires academic-structure management under an
// admin-guarded group.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAcademicsController(db)

	academics := admin.Group("/academics")

	academics.Post("/years", ctrl.CreateAcademicYear)
	academics.Get("/years", ctrl.ListAcademicYears)
	academics.Patch("/years/:id/set-current", ctrl.SetCurrentAcademicYear)

	academics.Post("/terms", ctrl.CreateTerm)
	academics.Get("/terms", ctrl.ListTerms)
	academics.Patch("/terms/:id/set-current", ctrl.SetCurrentTerm)

	academics.Post("/grades", ctrl.CreateGrade)
	academics.Get("/grades", ctrl.ListGrades)
	academics.Post("/classrooms", ctrl.CreateClassRoom)

	academics.Post("/students", ctrl.CreateStudent)
	academics.Get("/students", ctrl.ListStudents)
}
