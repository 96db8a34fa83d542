package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/controller"
)

// FeesStudentRoutes wires the self-service surface: a student sees their own
// statement and can submit a payment for review.
func FeesStudentRoutes(student fiber.Router, db *gorm.DB) {
	ledgers := controller.NewLedgerController(db)
	payments := controller.NewPaymentController(db)

	fees := student.Group("/fees")
	fees.Get("/statement", ledgers.GetMyStatement)
	fees.Post("/payments", payments.SubmitPayment)
}

// FeesSharedRoutes wires endpoints any authenticated user may hit.
func FeesSharedRoutes(authed fiber.Router, db *gorm.DB) {
	payments := controller.NewPaymentController(db)
	treasury := controller.NewTreasuryController(db)

	fees := authed.Group("/fees")
	fees.Get("/methods", payments.ListPaymentMethods)
	fees.Get("/receipts/:number", payments.GetReceipt)
	fees.Get("/exchange-rates", treasury.ListExchangeRates)
	fees.Get("/exchange-rates/convert", treasury.ConvertCurrency)
}
