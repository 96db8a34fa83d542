package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

/* =============== REQUESTS =============== */

type RecordPaymentRequest struct {
	StudentID uuid.UUID       `json:"student_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	MethodID  uuid.UUID       `json:"method_id" validate:"required"`
	Reference string          `json:"reference" validate:"max=100"`
	Date      time.Time       `json:"date" validate:"required"`
	Notes     string          `json:"notes"`

	// Optional: pin to an explicit (year, term). Both or neither.
	AcademicYearID *uuid.UUID `json:"academic_year_id,omitempty"`
	TermID         *uuid.UUID `json:"term_id,omitempty"`
}

type SubmitPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	MethodID  uuid.UUID       `json:"method_id" validate:"required"`
	Reference string          `json:"reference" validate:"max=100"`
	Date      time.Time       `json:"date" validate:"required"`
	Notes     string          `json:"notes"`
	ProofPath *string         `json:"proof_path,omitempty"`
}

type ReviewPaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=verified failed cancelled"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID    uuid.UUID       `json:"payment_id"`
	StudentID    uuid.UUID       `json:"student_id"`
	Amount       decimal.Decimal `json:"amount"`
	MethodID     uuid.UUID       `json:"method_id"`
	MethodName   string          `json:"method_name,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	RecordedByID uuid.UUID       `json:"recorded_by_id"`
	VerifiedAt   *time.Time      `json:"verified_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func FromPaymentModel(x m.PaymentModel) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:    x.PaymentID,
		StudentID:    x.PaymentStudentID,
		Amount:       x.PaymentAmount,
		MethodID:     x.PaymentMethodID,
		Reference:    x.PaymentReferenceNumber,
		Date:         x.PaymentDate,
		Status:       string(x.PaymentStatus),
		Notes:        x.PaymentNotes,
		RecordedByID: x.PaymentRecordedByID,
		VerifiedAt:   x.PaymentVerifiedAt,
		CreatedAt:    x.PaymentCreatedAt,
	}
	if x.Method != nil {
		resp.MethodName = x.Method.PaymentMethodName
	}
	return resp
}

func FromPaymentModels(list []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromPaymentModel(it))
	}
	return out
}

type ReceiptResponse struct {
	ReceiptID       uuid.UUID       `json:"receipt_id"`
	ReceiptNumber   string          `json:"receipt_number"`
	PaymentID       uuid.UUID       `json:"payment_id"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	GeneratedByID   uuid.UUID       `json:"generated_by_id"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

func FromReceiptModel(x m.ReceiptModel) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:       x.ReceiptID,
		ReceiptNumber:   x.ReceiptNumber,
		PaymentID:       x.ReceiptPaymentID,
		AmountPaid:      x.ReceiptAmountPaid,
		PreviousBalance: x.ReceiptPrevBalance,
		NewBalance:      x.ReceiptNewBalance,
		GeneratedByID:   x.ReceiptGeneratedByID,
		GeneratedAt:     x.ReceiptGeneratedAt,
	}
}

// PaymentWithReceiptResponse is the record-payment success payload: the
// payment, its receipt, and the ledger after the payment.
type PaymentWithReceiptResponse struct {
	Payment PaymentResponse  `json:"payment"`
	Receipt *ReceiptResponse `json:"receipt,omitempty"`
	Ledger  *LedgerResponse  `json:"ledger,omitempty"`
}

type PaymentMethodResponse struct {
	PaymentMethodID   uuid.UUID `json:"payment_method_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	IsActive          bool      `json:"is_active"`
	RequiresReference bool      `json:"requires_reference"`
}

func FromPaymentMethodModel(x m.PaymentMethodModel) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID:   x.PaymentMethodID,
		Name:              x.PaymentMethodName,
		Description:       x.PaymentMethodDescription,
		IsActive:          x.PaymentMethodIsActive,
		RequiresReference: x.PaymentMethodRequiresReference,
	}
}

func FromPaymentMethodModels(list []m.PaymentMethodModel) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromPaymentMethodModel(it))
	}
	return out
}
