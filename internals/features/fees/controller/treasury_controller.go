package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/dto"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/service"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
	helperAuth "github.com/Tapiwa2010/zrp-primary-school/internals/helpers/auth"
)

type TreasuryController struct {
	DB *gorm.DB
}

func NewTreasuryController(db *gorm.DB) *TreasuryController {
	return &TreasuryController{DB: db}
}

/* ======================= EXCHANGE RATES ======================= */

// POST /api/admin/fees/exchange-rates
func (h *TreasuryController) SetExchangeRate(c *fiber.Ctx) error {
	var req dto.SetExchangeRateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !req.Rate.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Rate must be greater than zero")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Rate already set for that pair and date")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save exchange rate")
	}
	return helper.JsonCreated(c, "Exchange rate set", m)
}

// GET /api/fees/exchange-rates
func (h *TreasuryController) ListExchangeRates(c *fiber.Ctx) error {
	var list []model.ExchangeRateModel
	if err := h.DB.Order("rate_date DESC").Limit(50).Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

// GET /api/fees/exchange-rates/convert?amount=&from=&to=&date=
func (h *TreasuryController) ConvertCurrency(c *fiber.Ctx) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.Query("amount")))
	if err != nil || !amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a positive decimal")
	}
	from := model.Currency(strings.ToUpper(strings.TrimSpace(c.Query("from"))))
	to := model.Currency(strings.ToUpper(strings.TrimSpace(c.Query("to"))))

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be YYYY-MM-DD")
		}
	}

	converted, err := service.Convert(h.DB, amount, from, to, date)
	if err != nil {
		return svcError(err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"amount":    amount,
		"from":      from,
		"to":        to,
		"date":      date.Format("2006-01-02"),
		"converted": converted,
	})
}

/* ======================= AGENT PAYMENTS ======================= */

// POST /api/admin/fees/agent-payments
func (h *TreasuryController) RecordAgentPayment(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordAgentPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !req.Amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be greater than zero")
	}

	m := model.AgentPaymentModel{
		AgentName:        req.AgentName,
		AgentPhone:       req.AgentPhone,
		AgentStudentID:   req.StudentID,
		AgentAmount:      req.Amount,
		AgentReference:   req.Reference,
		AgentCollectedAt: req.CollectedAt,
		AgentRecordedBy:  adminID,
		AgentStatus:      model.AgentPaymentPending,
		CommissionRate:   req.CommissionRate,
	}
	if m.CommissionRate.IsZero() {
		m.CommissionRate = decimal.NewFromInt(5)
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record agent payment")
	}
	return helper.JsonCreated(c, "Agent payment recorded", m)
}

// GET /api/admin/fees/agent-payments
func (h *TreasuryController) ListAgentPayments(c *fiber.Ctx) error {
	var list []model.AgentPaymentModel
	if err := h.DB.Order("agent_collected_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ======================= BANK RECONCILIATION ======================= */

// POST /api/admin/fees/reconciliations
func (h *TreasuryController) CreateReconciliation(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateReconciliationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := model.BankReconciliationModel{
		ReconciliationDate:  req.Date,
		BankBalance:         req.BankBalance,
		BookBalance:         req.BookBalance,
		ReconciledByID:      adminID,
		ReconciliationNotes: req.Notes,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save reconciliation")
	}
	return helper.JsonCreated(c, "Reconciliation recorded", m)
}

// GET /api/admin/fees/reconciliations
func (h *TreasuryController) ListReconciliations(c *fiber.Ctx) error {
	var list []model.BankReconciliationModel
	if err := h.DB.Order("reconciliation_date DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ======================= REMINDERS ======================= */

// POST /api/admin/fees/reminders
// Records a reminder as sent. Actual SMS/email delivery runs off-system; this
// keeps the paper trail.
func (h *TreasuryController) SendReminder(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SendReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := model.FeeReminderModel{
		ReminderStudentID: req.StudentID,
		ReminderType:      model.ReminderType(req.Type),
		ReminderMessage:   req.Message,
		SentViaSMS:        req.ViaSMS,
		SentViaEmail:      req.ViaEmail,
		ReminderSentByID:  adminID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save reminder")
	}
	return helper.JsonCreated(c, "Reminder recorded", m)
}

// GET /api/admin/fees/reminders?student_id=
func (h *TreasuryController) ListReminders(c *fiber.Ctx) error {
	q := h.DB.Model(&model.FeeReminderModel{})
	if raw := c.Query("student_id"); raw != "" {
		q = q.Where("reminder_student_id = ?", raw)
	}
	var list []model.FeeReminderModel
	if err := q.Order("reminder_sent_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ======================= DASHBOARD ======================= */

// GET /api/admin/fees/dashboard
// Headline collection numbers for the current (or requested) term.
func (h *TreasuryController) Dashboard(c *fiber.Ctx) error {
	tc, err := resolveTermFromQuery(c, h.DB)
	if err != nil {
		return svcError(err)
	}

	var totals struct {
		TotalCollected   decimal.Decimal
		TotalOutstanding decimal.Decimal
	}
	if err := h.DB.Raw(`
		SELECT
			COALESCE(SUM(payments_made), 0) AS total_collected,
			COALESCE(SUM(CASE WHEN outstanding_balance > 0 THEN outstanding_balance ELSE 0 END), 0) AS total_outstanding
		FROM student_ledgers
		WHERE ledger_academic_year_id = ? AND ledger_term_id = ?`,
		tc.AcademicYearID, tc.TermID).Scan(&totals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.DashboardResponse{
		AcademicYearID:   tc.AcademicYearID,
		TermID:           tc.TermID,
		TotalCollected:   totals.TotalCollected,
		TotalOutstanding: totals.TotalOutstanding,
		CollectedToday:   decimal.Zero,
	}

	ledgers := h.DB.Model(&model.StudentLedgerModel{}).
		Where("ledger_academic_year_id = ? AND ledger_term_id = ?", tc.AcademicYearID, tc.TermID)
	if err := ledgers.Session(&gorm.Session{}).Where("outstanding_balance > 0").Count(&resp.StudentsWithDebt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := ledgers.Session(&gorm.Session{}).Where("outstanding_balance < 0").Count(&resp.StudentsInCredit).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := ledgers.Session(&gorm.Session{}).Where("flagged_for_followup = ?", true).Count(&resp.FlaggedLedgers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Model(&model.PaymentModel{}).
		Where("payment_status = ?", model.PaymentStatusPending).
		Count(&resp.PendingPayments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Model(&model.RefundModel{}).
		Where("refund_status = ?", model.RefundPending).
		Count(&resp.PendingRefunds).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Model(&model.PaymentPlanModel{}).
		Where("plan_status = ?", model.PlanActive).
		Count(&resp.ActivePlans).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := h.DB.Model(&model.PaymentModel{}).
		Where("payment_status = ? AND payment_date >= ? AND payment_date < ?",
			model.PaymentStatusVerified, dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&resp.PaymentsToday).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var collectedToday struct{ Total decimal.Decimal }
	if err := h.DB.Raw(`
		SELECT COALESCE(SUM(payment_amount), 0) AS total
		FROM payments
		WHERE payment_status = ? AND payment_date >= ? AND payment_date < ?`,
		string(model.PaymentStatusVerified), dayStart, dayStart.AddDate(0, 0, 1)).
		Scan(&collectedToday).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	resp.CollectedToday = collectedToday.Total

	return helper.JsonOK(c, "OK", resp)
}
