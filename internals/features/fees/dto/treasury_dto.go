package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

/* =============== EXCHANGE RATES =============== */

type SetExchangeRateRequest struct {
	FromCurrency string          `json:"from_currency" validate:"required,oneof=USD ZWL ZAR"`
	ToCurrency   string          `json:"to_currency" validate:"required,oneof=USD ZWL ZAR,nefield=FromCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	RateDate     time.Time       `json:"rate_date" validate:"required"`
}

func (r SetExchangeRateRequest) ToModel() *m.ExchangeRateModel {
	return &m.ExchangeRateModel{
		FromCurrency: m.Currency(r.FromCurrency),
		ToCurrency:   m.Currency(r.ToCurrency),
		Rate:         r.Rate,
		RateDate:     r.RateDate,
	}
}

/* =============== AGENT PAYMENTS =============== */

type RecordAgentPaymentRequest struct {
	AgentName      string          `json:"agent_name" validate:"required,min=2,max=100"`
	AgentPhone     string          `json:"agent_phone" validate:"required,min=5,max=20"`
	StudentID      uuid.UUID       `json:"student_id" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Reference      string          `json:"reference" validate:"required,max=100"`
	CollectedAt    time.Time       `json:"collected_at" validate:"required"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

/* =============== BANK RECONCILIATION =============== */

type CreateReconciliationRequest struct {
	Date        time.Time       `json:"date" validate:"required"`
	BankBalance decimal.Decimal `json:"bank_balance"`
	BookBalance decimal.Decimal `json:"book_balance"`
	Notes       string          `json:"notes"`
}

/* =============== REMINDERS =============== */

type SendReminderRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=payment_due overdue final_notice receipt_confirmation"`
	Message   string    `json:"message" validate:"required,min=5"`
	ViaSMS    bool      `json:"via_sms"`
	ViaEmail  bool      `json:"via_email"`
}

/* =============== AUDIT =============== */

type AuditLogResponse struct {
	AuditID     uuid.UUID        `json:"audit_id"`
	UserID      uuid.UUID        `json:"user_id"`
	Action      string           `json:"action"`
	Description string           `json:"description"`
	StudentID   *uuid.UUID       `json:"student_id,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

func FromAuditLogModel(x m.AuditLogModel) AuditLogResponse {
	return AuditLogResponse{
		AuditID:     x.AuditID,
		UserID:      x.AuditUserID,
		Action:      string(x.AuditActionType),
		Description: x.AuditDescription,
		StudentID:   x.AuditStudentID,
		Amount:      x.AuditAmount,
		Timestamp:   x.AuditTimestamp,
	}
}

func FromAuditLogModels(list []m.AuditLogModel) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromAuditLogModel(it))
	}
	return out
}

/* =============== DASHBOARD =============== */

// DashboardResponse is the admin landing summary: headline collection totals
// plus arrears counts for the current term.
type DashboardResponse struct {
	AcademicYearID    uuid.UUID       `json:"academic_year_id"`
	TermID            uuid.UUID       `json:"term_id"`
	TotalCollected    decimal.Decimal `json:"total_collected"`
	TotalOutstanding  decimal.Decimal `json:"total_outstanding"`
	StudentsWithDebt  int64           `json:"students_with_debt"`
	StudentsInCredit  int64           `json:"students_in_credit"`
	FlaggedLedgers    int64           `json:"flagged_ledgers"`
	PaymentsToday     int64           `json:"payments_today"`
	PendingPayments   int64           `json:"pending_payments"`
	PendingRefunds    int64           `json:"pending_refunds"`
	ActivePlans       int64           `json:"active_plans"`
	CollectedToday    decimal.Decimal `json:"collected_today"`
}
