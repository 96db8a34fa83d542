package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

func TestRecordPaymentFullFlow(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	paidAt := time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC)
	result, err := RecordPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("400.00"),
		MethodID:   f.Cash.PaymentMethodID,
		Date:       paidAt,
		Notes:      "term 1 part payment",
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.NoError(t, err)

	require.Equal(t, model.PaymentStatusVerified, result.Payment.PaymentStatus)
	require.NotNil(t, result.Payment.PaymentVerifiedAt)
	require.Equal(t, f.Admin.UserID, *result.Payment.PaymentVerifiedByID)

	requireDecimalEqual(t, "400.00", result.Ledger.PaymentsMade)
	requireDecimalEqual(t, "600.00", result.Ledger.OutstandingBalance)

	require.True(t, strings.HasPrefix(result.Receipt.ReceiptNumber, "RCP-"))
	requireDecimalEqual(t, "400.00", result.Receipt.ReceiptAmountPaid)
	requireDecimalEqual(t, "1000.00", result.Receipt.ReceiptPrevBalance)
	requireDecimalEqual(t, "600.00", result.Receipt.ReceiptNewBalance)
	require.Equal(t, result.Payment.PaymentID, result.Receipt.ReceiptPaymentID)

	var audits []model.AuditLogModel
	require.NoError(t, db.Order("audit_timestamp ASC").Find(&audits).Error)
	require.Len(t, audits, 2)
	require.Equal(t, model.AuditPaymentRecorded, audits[0].AuditActionType)
	require.Equal(t, model.AuditReceiptGenerated, audits[1].AuditActionType)
	require.Equal(t, f.Student.StudentID, *audits[0].AuditStudentID)
}

func TestRecordPaymentRejectsNonPositiveAmountWithNoSideEffects(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	for _, amount := range []string{"0", "-25.00"} {
		_, err := RecordPayment(db, RecordPaymentInput{
			StudentID:  f.Student.StudentID,
			Amount:     decimal.RequireFromString(amount),
			MethodID:   f.Cash.PaymentMethodID,
			Date:       time.Now(),
			RecordedBy: f.Admin.UserID,
			Term:       f.Term,
		})
		require.ErrorIs(t, err, ErrValidation)
	}

	// Nothing may have been persisted: no payment, no ledger, no receipt,
	// no audit entry.
	for name, m := range map[string]interface{}{
		"payments":        &model.PaymentModel{},
		"student_ledgers": &model.StudentLedgerModel{},
		"receipts":        &model.ReceiptModel{},
		"audit_logs":      &model.AuditLogModel{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		require.Zerof(t, count, "%s must stay empty", name)
	}
}

func TestRecordPaymentUnknownStudent(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	_, err := RecordPayment(db, RecordPaymentInput{
		StudentID:  uuid.New(),
		Amount:     decimal.RequireFromString("100.00"),
		MethodID:   f.Cash.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPaymentMethodRequiresReference(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	_, err := RecordPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("100.00"),
		MethodID:   f.EcoCash.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = RecordPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("100.00"),
		MethodID:   f.EcoCash.PaymentMethodID,
		Reference:  "MP260203.1234.A12345",
		Date:       time.Now(),
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.NoError(t, err)
}

func TestRecordPaymentMethodLookup(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	// A method that does not exist is a missing reference, not bad input.
	_, err := RecordPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("100.00"),
		MethodID:   uuid.New(),
		Date:       time.Now(),
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.ErrorIs(t, err, ErrNotFound)

	// A method that exists but was retired rejects as invalid input.
	retired := model.PaymentMethodModel{
		PaymentMethodName:     "telecash",
		PaymentMethodIsActive: false,
	}
	require.NoError(t, db.Create(&retired).Error)

	_, err = RecordPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("100.00"),
		MethodID:   retired.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestSubmitPaymentStaysPendingAndUntouchedLedger(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	payment, err := SubmitPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("250.00"),
		MethodID:   f.Cash.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Student.StudentUserID,
	})
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusPending, payment.PaymentStatus)
	require.Nil(t, payment.PaymentLedgerID)

	var ledgers int64
	require.NoError(t, db.Model(&model.StudentLedgerModel{}).Count(&ledgers).Error)
	require.Zero(t, ledgers)

	var receipts int64
	require.NoError(t, db.Model(&model.ReceiptModel{}).Count(&receipts).Error)
	require.Zero(t, receipts)

	// The submission itself must still reach the audit trail.
	var audits []model.AuditLogModel
	require.NoError(t, db.Find(&audits).Error)
	require.Len(t, audits, 1)
	require.Equal(t, model.AuditPaymentSubmitted, audits[0].AuditActionType)
	require.Equal(t, f.Student.StudentID, *audits[0].AuditStudentID)
	requireDecimalEqual(t, "250.00", *audits[0].AuditAmount)
}

func TestReviewPaymentVerifyAppliesAndReceipts(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	pending, err := SubmitPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("300.00"),
		MethodID:   f.Cash.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Student.StudentUserID,
	})
	require.NoError(t, err)

	result, err := ReviewPayment(db, pending.PaymentID, model.PaymentStatusVerified, f.Admin.UserID, f.Term)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusVerified, result.Payment.PaymentStatus)
	require.NotNil(t, result.Receipt)
	requireDecimalEqual(t, "300.00", result.Ledger.PaymentsMade)
	requireDecimalEqual(t, "700.00", result.Ledger.OutstandingBalance)

	// A verified payment is terminal.
	_, err = ReviewPayment(db, pending.PaymentID, model.PaymentStatusCancelled, f.Admin.UserID, f.Term)
	require.ErrorIs(t, err, ErrValidation)
}

func TestReviewPaymentFailedLeavesLedgerAlone(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	pending, err := SubmitPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("300.00"),
		MethodID:   f.Cash.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Student.StudentUserID,
	})
	require.NoError(t, err)

	result, err := ReviewPayment(db, pending.PaymentID, model.PaymentStatusFailed, f.Admin.UserID, f.Term)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusFailed, result.Payment.PaymentStatus)
	require.Nil(t, result.Receipt)

	var ledgers int64
	require.NoError(t, db.Model(&model.StudentLedgerModel{}).Count(&ledgers).Error)
	require.Zero(t, ledgers)
}
