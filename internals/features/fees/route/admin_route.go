package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/controller"
)

// FeesAdminRoutes wires the bursar/admin surface under an admin-guarded group.
func FeesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	structures := controller.NewFeeStructureController(db)
	ledgers := controller.NewLedgerController(db)
	payments := controller.NewPaymentController(db)
	adjustments := controller.NewAdjustmentController(db)
	audit := controller.NewAuditController(db)
	treasury := controller.NewTreasuryController(db)

	fees := admin.Group("/fees")

	fees.Post("/structures", structures.UpsertFeeStructure)
	fees.Get("/structures", structures.ListFeeStructures)
	fees.Get("/structures/:id", structures.GetFeeStructure)
	fees.Post("/components", structures.CreateFeeComponent)
	fees.Get("/components", structures.ListFeeComponents)

	fees.Get("/ledgers", ledgers.ListLedgers)
	fees.Get("/ledgers/:student_id", ledgers.GetStudentLedger)
	fees.Patch("/ledgers/:ledger_id", ledgers.EditLedger)
	fees.Patch("/ledgers/:ledger_id/flag", ledgers.FlagLedger)

	fees.Post("/payments", payments.RecordPayment)
	fees.Get("/payments", payments.ListPayments)
	fees.Patch("/payments/:id/review", payments.ReviewPayment)

	fees.Post("/discounts", adjustments.GrantDiscount)
	fees.Get("/discounts", adjustments.ListDiscounts)
	fees.Delete("/discounts/:id", adjustments.RevokeDiscount)

	fees.Post("/plans", adjustments.CreatePlan)
	fees.Get("/plans", adjustments.ListPlans)
	fees.Patch("/plans/:id/status", adjustments.SetPlanStatus)

	fees.Post("/refunds", adjustments.RequestRefund)
	fees.Get("/refunds", adjustments.ListRefunds)
	fees.Patch("/refunds/:id/review", adjustments.ReviewRefund)
	fees.Patch("/refunds/:id/process", adjustments.ProcessRefund)

	fees.Get("/audit", audit.ListAuditLogs)

	fees.Post("/exchange-rates", treasury.SetExchangeRate)
	fees.Post("/agent-payments", treasury.RecordAgentPayment)
	fees.Get("/agent-payments", treasury.ListAgentPayments)
	fees.Post("/reconciliations", treasury.CreateReconciliation)
	fees.Get("/reconciliations", treasury.ListReconciliations)
	fees.Post("/reminders", treasury.SendReminder)
	fees.Get("/reminders", treasury.ListReminders)
	fees.Get("/dashboard", treasury.Dashboard)
}
