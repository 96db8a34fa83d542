package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StudentLedgerModel is the single source of truth for what a student owes in
// one (student, academic year, term). Derived columns:
//
//	total_required      = opening_balance + term_fees
//	outstanding_balance = total_required − payments_made
//
// Both are recomputed atomically in SQL by the ledger service; they are never
// maintained by application-side read-modify-write. A negative outstanding
// balance means credit (overpayment) and is valid.
type StudentLedgerModel struct {
	LedgerID             uuid.UUID `gorm:"column:ledger_id;type:uuid;primaryKey" json:"ledger_id"`
	LedgerStudentID      uuid.UUID `gorm:"column:ledger_student_id;type:uuid;not null;index;uniqueIndex:uniq_ledger,priority:1" json:"ledger_student_id"`
	LedgerAcademicYearID uuid.UUID `gorm:"column:ledger_academic_year_id;type:uuid;not null;uniqueIndex:uniq_ledger,priority:2" json:"ledger_academic_year_id"`
	LedgerTermID         uuid.UUID `gorm:"column:ledger_term_id;type:uuid;not null;uniqueIndex:uniq_ledger,priority:3" json:"ledger_term_id"`

	OpeningBalance     decimal.Decimal `gorm:"column:opening_balance;type:decimal(10,2);not null;default:0" json:"opening_balance"` // arrears from previous term
	TermFees           decimal.Decimal `gorm:"column:term_fees;type:decimal(10,2);not null;default:0" json:"term_fees"`
	TotalRequired      decimal.Decimal `gorm:"column:total_required;type:decimal(10,2);not null;default:0" json:"total_required"`
	PaymentsMade       decimal.Decimal `gorm:"column:payments_made;type:decimal(10,2);not null;default:0" json:"payments_made"`
	OutstandingBalance decimal.Decimal `gorm:"column:outstanding_balance;type:decimal(10,2);not null;default:0" json:"outstanding_balance"`

	LastPaymentDate     *time.Time `gorm:"column:last_payment_date" json:"last_payment_date,omitempty"`
	FlaggedForFollowup  bool       `gorm:"column:flagged_for_followup;not null;default:false;index" json:"flagged_for_followup"`
	LedgerNotes         string     `gorm:"column:ledger_notes;type:text" json:"ledger_notes"`

	LedgerCreatedAt time.Time `gorm:"column:ledger_created_at;autoCreateTime" json:"ledger_created_at"`
	LedgerUpdatedAt time.Time `gorm:"column:ledger_updated_at;autoUpdateTime" json:"ledger_updated_at"`
}

func (StudentLedgerModel) TableName() string { return "student_ledgers" }
