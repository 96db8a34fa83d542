package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethodModel lists the channels the school accepts.
type PaymentMethodModel struct {
	PaymentMethodID                uuid.UUID `gorm:"column:payment_method_id;type:uuid;primaryKey" json:"payment_method_id"`
	PaymentMethodName              string    `gorm:"column:payment_method_name;size:20;uniqueIndex;not null" json:"payment_method_name"`
	PaymentMethodDescription       string    `gorm:"column:payment_method_description;type:text" json:"payment_method_description"`
	PaymentMethodIsActive          bool      `gorm:"column:payment_method_is_active;not null;default:true" json:"payment_method_is_active"`
	PaymentMethodRequiresReference bool      `gorm:"column:payment_method_requires_reference;not null;default:false" json:"payment_method_requires_reference"`
}

func (PaymentMethodModel) TableName() string { return "payment_methods" }

// Known method names, seeded at install time.
var KnownPaymentMethods = []string{
	"cash", "ecocash", "bank_transfer", "zipit", "swipe", "cheque", "paynow", "innbucks",
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusVerified  PaymentStatus = "verified"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// CanTransitionTo enforces the one-way payment lifecycle: a pending payment
// may be reviewed into any terminal state; verified/failed/cancelled never
// move again.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s != PaymentStatusPending {
		return false
	}
	switch next {
	case PaymentStatusVerified, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// PaymentModel records one payment by a student. Only verified payments
// affect ledger totals; admin-entered payments are created verified.
type PaymentModel struct {
	PaymentID              uuid.UUID       `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentStudentID       uuid.UUID       `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentLedgerID        *uuid.UUID      `gorm:"column:payment_ledger_id;type:uuid;index" json:"payment_ledger_id,omitempty"`
	PaymentAmount          decimal.Decimal `gorm:"column:payment_amount;type:decimal(10,2);not null" json:"payment_amount"`
	PaymentMethodID        uuid.UUID       `gorm:"column:payment_method_id;type:uuid;not null;index" json:"payment_method_id"`
	PaymentReferenceNumber string          `gorm:"column:payment_reference_number;size:100" json:"payment_reference_number"`
	PaymentDate            time.Time       `gorm:"column:payment_date;not null;index" json:"payment_date"`
	PaymentRecordedByID    uuid.UUID       `gorm:"column:payment_recorded_by_id;type:uuid;not null;index" json:"payment_recorded_by_id"`
	PaymentStatus          PaymentStatus   `gorm:"column:payment_status;type:varchar(10);not null;default:'pending';index" json:"payment_status"`
	PaymentNotes           string          `gorm:"column:payment_notes;type:text" json:"payment_notes"`
	PaymentProofPath       *string         `gorm:"column:payment_proof_path;size:255" json:"payment_proof_path,omitempty"`
	PaymentVerifiedAt      *time.Time      `gorm:"column:payment_verified_at" json:"payment_verified_at,omitempty"`
	PaymentVerifiedByID    *uuid.UUID      `gorm:"column:payment_verified_by_id;type:uuid" json:"payment_verified_by_id,omitempty"`
	PaymentCreatedAt       time.Time       `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`

	Method *PaymentMethodModel `gorm:"foreignKey:PaymentMethodID;references:PaymentMethodID" json:"method,omitempty"`
	Ledger *StudentLedgerModel `gorm:"foreignKey:PaymentLedgerID;references:LedgerID" json:"ledger,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
