package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

/* =============== REQUESTS =============== */

// EditLedgerRequest lets an admin correct opening_balance and term_fees; the
// derived columns are recomputed server-side and cannot be set directly.
type EditLedgerRequest struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	TermFees       decimal.Decimal `json:"term_fees"`
	Reason         string          `json:"reason" validate:"required,min=5"`
}

type FlagLedgerRequest struct {
	Flagged *bool  `json:"flagged" validate:"required"`
	Notes   string `json:"notes"`
}

/* =============== RESPONSES =============== */

type LedgerResponse struct {
	LedgerID       uuid.UUID `json:"ledger_id"`
	StudentID      uuid.UUID `json:"student_id"`
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	TermID         uuid.UUID `json:"term_id"`

	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	TermFees           decimal.Decimal `json:"term_fees"`
	TotalRequired      decimal.Decimal `json:"total_required"`
	PaymentsMade       decimal.Decimal `json:"payments_made"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	InCredit           bool            `json:"in_credit"`

	LastPaymentDate    *time.Time `json:"last_payment_date,omitempty"`
	FlaggedForFollowup bool       `json:"flagged_for_followup"`
	Notes              string     `json:"notes,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromLedgerModel(x m.StudentLedgerModel) LedgerResponse {
	return LedgerResponse{
		LedgerID:           x.LedgerID,
		StudentID:          x.LedgerStudentID,
		AcademicYearID:     x.LedgerAcademicYearID,
		TermID:             x.LedgerTermID,
		OpeningBalance:     x.OpeningBalance,
		TermFees:           x.TermFees,
		TotalRequired:      x.TotalRequired,
		PaymentsMade:       x.PaymentsMade,
		OutstandingBalance: x.OutstandingBalance,
		InCredit:           x.OutstandingBalance.IsNegative(),
		LastPaymentDate:    x.LastPaymentDate,
		FlaggedForFollowup: x.FlaggedForFollowup,
		Notes:              x.LedgerNotes,
		UpdatedAt:          x.LedgerUpdatedAt,
	}
}

func FromLedgerModels(list []m.StudentLedgerModel) []LedgerResponse {
	out := make([]LedgerResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromLedgerModel(it))
	}
	return out
}

// StatementResponse is a ledger plus its payment history and the amount due
// after discounts — what a parent sees when they ask "where do we stand".
type StatementResponse struct {
	Ledger    LedgerResponse    `json:"ledger"`
	AmountDue decimal.Decimal   `json:"amount_due"`
	Payments  []PaymentResponse `json:"payments"`
}
