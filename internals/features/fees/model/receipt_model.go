package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptModel is the immutable proof-of-payment issued for every verified
// payment. The balance columns are snapshots taken at issuance and are never
// recomputed afterwards.
type ReceiptModel struct {
	ReceiptID            uuid.UUID       `gorm:"column:receipt_id;type:uuid;primaryKey" json:"receipt_id"`
	ReceiptPaymentID     uuid.UUID       `gorm:"column:receipt_payment_id;type:uuid;uniqueIndex;not null" json:"receipt_payment_id"`
	ReceiptNumber        string          `gorm:"column:receipt_number;size:50;uniqueIndex;not null" json:"receipt_number"`
	ReceiptAmountPaid    decimal.Decimal `gorm:"column:receipt_amount_paid;type:decimal(10,2);not null" json:"receipt_amount_paid"`
	ReceiptPrevBalance   decimal.Decimal `gorm:"column:receipt_previous_balance;type:decimal(10,2);not null" json:"receipt_previous_balance"`
	ReceiptNewBalance    decimal.Decimal `gorm:"column:receipt_new_balance;type:decimal(10,2);not null" json:"receipt_new_balance"`
	ReceiptGeneratedByID uuid.UUID       `gorm:"column:receipt_generated_by_id;type:uuid;not null" json:"receipt_generated_by_id"`
	ReceiptGeneratedAt   time.Time       `gorm:"column:receipt_generated_at;autoCreateTime" json:"receipt_generated_at"`

	Payment *PaymentModel `gorm:"foreignKey:ReceiptPaymentID;references:PaymentID" json:"payment,omitempty"`
}

func (ReceiptModel) TableName() string { return "receipts" }

// ReceiptCounterModel holds the per-year receipt sequence. The counter is
// only ever touched through a single upsert-and-return statement so two
// concurrent payment recordings can never draw the same number.
type ReceiptCounterModel struct {
	CounterYear         int   `gorm:"column:counter_year;primaryKey" json:"counter_year"`
	CounterLastSequence int64 `gorm:"column:counter_last_sequence;not null;default:0" json:"counter_last_sequence"`
}

func (ReceiptCounterModel) TableName() string { return "receipt_counters" }
