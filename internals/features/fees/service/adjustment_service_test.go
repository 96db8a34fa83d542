package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

func TestEffectiveDiscountCombinesAndCaps(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	_, err := GrantDiscount(db, GrantDiscountInput{
		StudentID:  f.Student.StudentID,
		Type:       model.DiscountSibling,
		Percentage: decimal.RequireFromString("10"),
		Reason:     "second child enrolled",
		ApprovedBy: f.Admin.UserID,
	})
	require.NoError(t, err)
	_, err = GrantDiscount(db, GrantDiscountInput{
		StudentID:   f.Student.StudentID,
		Type:        model.DiscountHardship,
		FixedAmount: decimal.RequireFromString("50.00"),
		Reason:      "hardship committee approval",
		ApprovedBy:  f.Admin.UserID,
	})
	require.NoError(t, err)

	base := decimal.RequireFromString("1000.00")
	reduction, err := EffectiveDiscount(db, f.Student.StudentID, base)
	require.NoError(t, err)
	requireDecimalEqual(t, "150.00", reduction) // 10% of 1000 + 50

	// A full scholarship caps at the base; the due amount never goes negative.
	_, err = GrantDiscount(db, GrantDiscountInput{
		StudentID:  f.Student.StudentID,
		Type:       model.DiscountFullScholarship,
		Percentage: decimal.RequireFromString("100"),
		Reason:     "board scholarship award",
		ApprovedBy: f.Admin.UserID,
	})
	require.NoError(t, err)

	reduction, err = EffectiveDiscount(db, f.Student.StudentID, base)
	require.NoError(t, err)
	requireDecimalEqual(t, "1000.00", reduction)
}

func TestAmountDueAppliesDiscountsWithoutTouchingLedger(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	ledger, err := GetOrCreateLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)

	_, err = GrantDiscount(db, GrantDiscountInput{
		StudentID:  f.Student.StudentID,
		Type:       model.DiscountPartialScholarship,
		Percentage: decimal.RequireFromString("25"),
		Reason:     "council part scholarship",
		ApprovedBy: f.Admin.UserID,
	})
	require.NoError(t, err)

	due, err := AmountDue(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)
	requireDecimalEqual(t, "750.00", due)

	// The ledger columns themselves are untouched.
	var after model.StudentLedgerModel
	require.NoError(t, db.First(&after, "ledger_id = ?", ledger.LedgerID).Error)
	requireDecimalEqual(t, "1000.00", after.OutstandingBalance)

	// A part payment never shrinks a percentage discount: 25% stays 250.00
	// off the full 1000.00 obligation, not off the 600.00 remainder.
	_, err = RecordPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("400.00"),
		MethodID:   f.Cash.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.NoError(t, err)

	due, err = AmountDue(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)
	requireDecimalEqual(t, "350.00", due)
}

func TestGrantDiscountValidation(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	cases := []GrantDiscountInput{
		{StudentID: f.Student.StudentID, Type: "tuck_shop", Percentage: decimal.RequireFromString("10"), Reason: "x", ApprovedBy: f.Admin.UserID},
		{StudentID: f.Student.StudentID, Type: model.DiscountSibling, Percentage: decimal.RequireFromString("120"), Reason: "x", ApprovedBy: f.Admin.UserID},
		{StudentID: f.Student.StudentID, Type: model.DiscountSibling, Reason: "x", ApprovedBy: f.Admin.UserID},
	}
	for _, in := range cases {
		_, err := GrantDiscount(db, in)
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestCreatePaymentPlanFixesInstallments(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	plan, err := CreatePaymentPlan(db, CreatePlanInput{
		StudentID:    f.Student.StudentID,
		TotalAmount:  decimal.RequireFromString("1000.00"),
		Installments: 3,
		StartDate:    start,
		EndDate:      start.AddDate(0, 3, 0),
		CreatedBy:    f.Admin.UserID,
	})
	require.NoError(t, err)
	requireDecimalEqual(t, "333.33", plan.PlanInstallmentAmount)
	require.Equal(t, model.PlanActive, plan.PlanStatus)

	_, err = CreatePaymentPlan(db, CreatePlanInput{
		StudentID:    f.Student.StudentID,
		TotalAmount:  decimal.RequireFromString("1000.00"),
		Installments: 0,
		StartDate:    start,
		EndDate:      start.AddDate(0, 3, 0),
		CreatedBy:    f.Admin.UserID,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestSetPlanStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	start := time.Now()
	plan, err := CreatePaymentPlan(db, CreatePlanInput{
		StudentID:    f.Student.StudentID,
		TotalAmount:  decimal.RequireFromString("600.00"),
		Installments: 2,
		StartDate:    start,
		EndDate:      start.AddDate(0, 2, 0),
		CreatedBy:    f.Admin.UserID,
	})
	require.NoError(t, err)

	require.NoError(t, SetPlanStatus(db, plan.PlanID, model.PlanCompleted))

	// Completed is terminal.
	err = SetPlanStatus(db, plan.PlanID, model.PlanCancelled)
	require.ErrorIs(t, err, ErrNotFound)

	err = SetPlanStatus(db, plan.PlanID, model.PlanActive)
	require.ErrorIs(t, err, ErrValidation)
}

func TestRefundLifecycle(t *testing.T) {
	db := newTestDB(t)
	f := seedBase(t, db)

	// Put 400 of real payments on the ledger first.
	_, err := RecordPayment(db, RecordPaymentInput{
		StudentID:  f.Student.StudentID,
		Amount:     decimal.RequireFromString("400.00"),
		MethodID:   f.Cash.PaymentMethodID,
		Date:       time.Now(),
		RecordedBy: f.Admin.UserID,
		Term:       f.Term,
	})
	require.NoError(t, err)

	// Cannot refund more than was paid.
	_, err = RequestRefund(db, RequestRefundInput{
		StudentID:   f.Student.StudentID,
		Amount:      decimal.RequireFromString("500.00"),
		Reason:      "transfer to another school",
		MethodID:    f.Cash.PaymentMethodID,
		RequestedBy: f.Admin.UserID,
		Term:        f.Term,
	})
	require.ErrorIs(t, err, ErrValidation)

	refund, err := RequestRefund(db, RequestRefundInput{
		StudentID:   f.Student.StudentID,
		Amount:      decimal.RequireFromString("150.00"),
		Reason:      "transfer to another school",
		MethodID:    f.Cash.PaymentMethodID,
		RequestedBy: f.Admin.UserID,
		Term:        f.Term,
	})
	require.NoError(t, err)
	require.Equal(t, model.RefundPending, refund.RefundStatus)

	// The requester cannot approve their own refund.
	_, err = ReviewRefund(db, refund.RefundID, model.RefundApproved, f.Admin.UserID)
	require.ErrorIs(t, err, ErrValidation)

	// Cannot process before approval.
	_, err = ProcessRefund(db, refund.RefundID, f.Admin.UserID, f.Term)
	require.ErrorIs(t, err, ErrValidation)

	// A second admin approves, then processing backs it out of the ledger.
	approver := seedSecondAdmin(t, db)
	approved, err := ReviewRefund(db, refund.RefundID, model.RefundApproved, approver)
	require.NoError(t, err)
	require.Equal(t, model.RefundApproved, approved.RefundStatus)
	require.Equal(t, approver, *approved.RefundApprovedByID)

	processed, err := ProcessRefund(db, refund.RefundID, approver, f.Term)
	require.NoError(t, err)
	require.Equal(t, model.RefundProcessed, processed.RefundStatus)
	require.NotNil(t, processed.RefundProcessedAt)

	ledger, err := GetLedger(db, f.Student.StudentID, f.Term)
	require.NoError(t, err)
	requireDecimalEqual(t, "250.00", ledger.PaymentsMade)
	requireDecimalEqual(t, "750.00", ledger.OutstandingBalance)

	// Processed is terminal.
	_, err = ReviewRefund(db, refund.RefundID, model.RefundRejected, approver)
	require.ErrorIs(t, err, ErrValidation)

	var audits int64
	require.NoError(t, db.Model(&model.AuditLogModel{}).
		Where("audit_action_type = ?", model.AuditRefundProcessed).
		Count(&audits).Error)
	require.EqualValues(t, 1, audits)
}
