package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

// NextReceiptNumber draws the next number in the per-year sequence, format
// RCP-<year>-NNNNNN. The upsert increments and returns in one statement, so
// two concurrent callers always get distinct numbers with no gap or repeat.
func NextReceiptNumber(tx *gorm.DB, year int) (string, error) {
	var seq int64
	err := tx.Raw(`
		INSERT INTO receipt_counters (counter_year, counter_last_sequence)
		VALUES (?, 1)
		ON CONFLICT (counter_year)
		DO UPDATE SET counter_last_sequence = receipt_counters.counter_last_sequence + 1
		RETURNING counter_last_sequence`, year).Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RCP-%d-%06d", year, seq), nil
}

// IssueReceipt creates the immutable receipt for a verified payment. The
// previous balance is reconstructed from the post-payment ledger: what was
// owed before is what is owed now plus what was just paid.
func IssueReceipt(tx *gorm.DB, payment *model.PaymentModel, outstandingAfter decimal.Decimal, generatedBy uuid.UUID) (*model.ReceiptModel, error) {
	number, err := NextReceiptNumber(tx, time.Now().Year())
	if err != nil {
		return nil, err
	}
	receipt := model.ReceiptModel{
		ReceiptPaymentID:     payment.PaymentID,
		ReceiptNumber:        number,
		ReceiptAmountPaid:    payment.PaymentAmount,
		ReceiptPrevBalance:   outstandingAfter.Add(payment.PaymentAmount),
		ReceiptNewBalance:    outstandingAfter,
		ReceiptGeneratedByID: generatedBy,
	}
	if err := tx.Create(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

// GetReceiptByNumber looks a receipt up by its public number.
func GetReceiptByNumber(db *gorm.DB, number string) (*model.ReceiptModel, error) {
	var receipt model.ReceiptModel
	err := db.Preload("Payment").Preload("Payment.Method").
		Where("receipt_number = ?", number).First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &receipt, nil
}
