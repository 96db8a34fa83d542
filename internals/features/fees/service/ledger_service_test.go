package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

func TestGetOrCreateLedgerPricesFromFeeStructure(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	ledger, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)

	// 800 + 50 + 100 + 50
	requireDecimalEqual(t, "1000.00", ledger.TermFees)
	requireDecimalEqual(t, "0", ledger.OpeningBalance)
	requireDecimalEqual(t, "1000.00", ledger.TotalRequired)
	requireDecimalEqual(t, "1000.00", ledger.OutstandingBalance)
	requireDecimalEqual(t, "0", ledger.PaymentsMade)

	again, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)
	require.Equal(t, ledger.LedgerID, again.LedgerID)
}

func TestGetOrCreateLedgerCarriesArrearsForwardNotCredit(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	prior, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)
	require.NoError(t, ApplyVerifiedPayment(db, prior.LedgerID,
		decimal.RequireFromString("850.00"), time.Now()))

	// The second term has no fee structure on purpose; only arrears carry.
	nextTerm := f.Term
	nextTerm.TermID = uuid.New()

	next, err := GetOrCreateLedger(db, f.Student.StudentID, nextTerm)
	require.NoError(t, err)
	requireDecimalEqual(t, "150.00", next.OpeningBalance)

	// Overpay the second term into credit; a third term must not inherit it.
	require.NoError(t, ApplyVerifiedPayment(db, next.LedgerID,
		decimal.RequireFromString("200.00"), time.Now()))
	thirdTerm := f.Term
	thirdTerm.TermID = uuid.New()

	third, err := GetOrCreateLedger(db, f.Student.StudentID, thirdTerm)
	require.NoError(t, err)
	requireDecimalEqual(t, "0", third.OpeningBalance)
}

func TestApplyVerifiedPaymentAccumulates(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	ledger, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)

	paidAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, ApplyVerifiedPayment(db, ledger.LedgerID,
		decimal.RequireFromString("400.00"), paidAt))
	require.NoError(t, ApplyVerifiedPayment(db, ledger.LedgerID,
		decimal.RequireFromString("250.00"), paidAt.AddDate(0, 0, 7)))

	var after model.StudentLedgerModel
	require.NoError(t, db.First(&after, "ledger_id = ?", ledger.LedgerID).Error)
	requireDecimalEqual(t, "650.00", after.PaymentsMade)
	requireDecimalEqual(t, "1000.00", after.TotalRequired)
	requireDecimalEqual(t, "350.00", after.OutstandingBalance)
	require.NotNil(t, after.LastPaymentDate)
}

func TestApplyVerifiedPaymentOverpaymentGoesNegative(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	ledger, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)
	require.NoError(t, ApplyVerifiedPayment(db, ledger.LedgerID,
		decimal.RequireFromString("1100.00"), time.Now()))

	var after model.StudentLedgerModel
	require.NoError(t, db.First(&after, "ledger_id = ?", ledger.LedgerID).Error)
	requireDecimalEqual(t, "-100.00", after.OutstandingBalance)
	require.True(t, after.OutstandingBalance.IsNegative())
}

func TestApplyVerifiedPaymentUnknownLedger(t *testing.T) {
	db := newTestDB(t)
	seedBase(t, db)

	err := ApplyVerifiedPayment(db, uuid.New(), decimal.RequireFromString("10.00"), time.Now())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetLedgerFeesRecomputesDerivedColumns(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	ledger, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)
	require.NoError(t, ApplyVerifiedPayment(db, ledger.LedgerID,
		decimal.RequireFromString("300.00"), time.Now()))

	require.NoError(t, SetLedgerFees(db, ledger.LedgerID,
		decimal.RequireFromString("120.00"), decimal.RequireFromString("900.00")))

	var after model.StudentLedgerModel
	require.NoError(t, db.First(&after, "ledger_id = ?", ledger.LedgerID).Error)
	requireDecimalEqual(t, "1020.00", after.TotalRequired)
	requireDecimalEqual(t, "300.00", after.PaymentsMade)
	requireDecimalEqual(t, "720.00", after.OutstandingBalance)
}

func TestSetLedgerFlag(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	ledger, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)

	require.NoError(t, SetLedgerFlag(db, ledger.LedgerID, true, "term 1 unpaid, parents contacted"))

	var after model.StudentLedgerModel
	require.NoError(t, db.First(&after, "ledger_id = ?", ledger.LedgerID).Error)
	require.True(t, after.FlaggedForFollowup)
	require.Equal(t, "term 1 unpaid, parents contacted", after.LedgerNotes)

	require.NoError(t, SetLedgerFlag(db, ledger.LedgerID, false, ""))
	require.NoError(t, db.First(&after, "ledger_id = ?", ledger.LedgerID).Error)
	require.False(t, after.FlaggedForFollowup)
	require.Equal(t, "term 1 unpaid, parents contacted", after.LedgerNotes)
}
