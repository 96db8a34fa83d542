package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	academicservice "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/service"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

var hundred = decimal.NewFromInt(100)

/* ==============================
   DISCOUNTS
============================== */

// EffectiveDiscount sums a student's active discounts against a base amount:
// percentage discounts are taken off the base, fixed ones added as-is, and the
// result is capped at the base so a discount never produces a negative due.
func EffectiveDiscount(db *gorm.DB, studentID uuid.UUID, base decimal.Decimal) (decimal.Decimal, error) {
	var discounts []model.DiscountModel
	if err := db.Where("discount_student_id = ? AND discount_is_active = ?", studentID, true).
		Find(&discounts).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, d := range discounts {
		if d.DiscountPercentage.IsPositive() {
			total = total.Add(base.Mul(d.DiscountPercentage).Div(hundred).Round(2))
		}
		if d.DiscountFixedAmount.IsPositive() {
			total = total.Add(d.DiscountFixedAmount)
		}
	}
	if total.GreaterThan(base) {
		return base, nil
	}
	return total, nil
}

// AmountDue is the ledger's outstanding balance less active discounts.
// Percentage discounts are taken against the full term obligation
// (total_required), not against whatever happens to remain unpaid, so a part
// payment never shrinks the discount. Discounts are declarative: the ledger
// columns never change, only this view.
func AmountDue(db *gorm.DB, studentID uuid.UUID, tc academicservice.TermContext) (decimal.Decimal, error) {
	ledger, err := GetLedger(db, studentID, tc)
	if err != nil {
		return decimal.Zero, err
	}
	if !ledger.OutstandingBalance.IsPositive() {
		return ledger.OutstandingBalance, nil
	}
	reduction, err := EffectiveDiscount(db, studentID, ledger.TotalRequired)
	if err != nil {
		return decimal.Zero, err
	}
	if reduction.GreaterThan(ledger.OutstandingBalance) {
		reduction = ledger.OutstandingBalance
	}
	return ledger.OutstandingBalance.Sub(reduction), nil
}

// GrantDiscountInput carries a new discount into GrantDiscount.
type GrantDiscountInput struct {
	StudentID   uuid.UUID
	Type        model.DiscountType
	Percentage  decimal.Decimal
	FixedAmount decimal.Decimal
	Reason      string
	ApprovedBy  uuid.UUID
}

func GrantDiscount(db *gorm.DB, in GrantDiscountInput) (*model.DiscountModel, error) {
	if !model.ValidDiscountType(in.Type) {
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrValidation, in.Type)
	}
	if in.Percentage.IsNegative() || in.Percentage.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: discount percentage must be between 0 and 100", ErrValidation)
	}
	if in.FixedAmount.IsNegative() {
		return nil, fmt.Errorf("%w: fixed discount cannot be negative", ErrValidation)
	}
	if in.Percentage.IsZero() && in.FixedAmount.IsZero() {
		return nil, fmt.Errorf("%w: discount must carry a percentage or a fixed amount", ErrValidation)
	}

	discount := model.DiscountModel{
		DiscountStudentID:    in.StudentID,
		DiscountType:         in.Type,
		DiscountPercentage:   in.Percentage,
		DiscountFixedAmount:  in.FixedAmount,
		DiscountReason:       in.Reason,
		DiscountApprovedByID: in.ApprovedBy,
		DiscountIsActive:     true,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&discount).Error; err != nil {
			return err
		}
		return WriteAudit(tx, AuditEntry{
			UserID:      in.ApprovedBy,
			Action:      model.AuditDiscountApplied,
			Description: fmt.Sprintf("granted %s discount to student %s", in.Type, in.StudentID),
			StudentID:   &in.StudentID,
			Metadata: map[string]interface{}{
				"percentage":   in.Percentage.String(),
				"fixed_amount": in.FixedAmount.String(),
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

// RevokeDiscount deactivates a discount; history stays on the row.
func RevokeDiscount(db *gorm.DB, discountID uuid.UUID) error {
	res := db.Model(&model.DiscountModel{}).
		Where("discount_id = ? AND discount_is_active = ?", discountID, true).
		Update("discount_is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ==============================
   PAYMENT PLANS
============================== */

// CreatePlanInput carries a new installment schedule into CreatePaymentPlan.
type CreatePlanInput struct {
	StudentID    uuid.UUID
	LedgerID     *uuid.UUID
	TotalAmount  decimal.Decimal
	Installments int
	StartDate    time.Time
	EndDate      time.Time
	CreatedBy    uuid.UUID
}

// CreatePaymentPlan fixes the schedule at creation time: the installment
// amount is total divided by count, rounded to cents, and never recomputed
// when later payments come in ahead of or behind schedule.
func CreatePaymentPlan(db *gorm.DB, in CreatePlanInput) (*model.PaymentPlanModel, error) {
	if !in.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: plan total must be greater than zero", ErrValidation)
	}
	if in.Installments <= 0 {
		return nil, fmt.Errorf("%w: plan needs at least one installment", ErrValidation)
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: plan end date precedes start date", ErrValidation)
	}

	plan := model.PaymentPlanModel{
		PlanStudentID:         in.StudentID,
		PlanLedgerID:          in.LedgerID,
		PlanTotalAmount:       in.TotalAmount,
		PlanInstallments:      in.Installments,
		PlanInstallmentAmount: in.TotalAmount.DivRound(decimal.NewFromInt(int64(in.Installments)), 2),
		PlanStartDate:         in.StartDate,
		PlanEndDate:           in.EndDate,
		PlanStatus:            model.PlanActive,
		PlanCreatedByID:       in.CreatedBy,
	}
	if err := db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// SetPlanStatus moves an active plan to completed, cancelled or defaulted.
func SetPlanStatus(db *gorm.DB, planID uuid.UUID, next model.PaymentPlanStatus) error {
	switch next {
	case model.PlanCompleted, model.PlanCancelled, model.PlanDefaulted:
	default:
		return fmt.Errorf("%w: cannot move a plan to %q", ErrValidation, next)
	}
	res := db.Model(&model.PaymentPlanModel{}).
		Where("plan_id = ? AND plan_status = ?", planID, model.PlanActive).
		Update("plan_status", next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no active plan %s", ErrNotFound, planID)
	}
	return nil
}

/* ==============================
   REFUNDS
============================== */

// RequestRefundInput carries a new refund request into RequestRefund.
type RequestRefundInput struct {
	StudentID   uuid.UUID
	Amount      decimal.Decimal
	Reason      string
	MethodID    uuid.UUID
	RequestedBy uuid.UUID
	Term        academicservice.TermContext
}

// RequestRefund opens a pending refund. The amount may not exceed what the
// student has actually paid this term.
func RequestRefund(db *gorm.DB, in RequestRefundInput) (*model.RefundModel, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: refund amount must be greater than zero", ErrValidation)
	}
	ledger, err := GetLedger(db, in.StudentID, in.Term)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: student has no ledger this term", ErrValidation)
		}
		return nil, err
	}
	if in.Amount.GreaterThan(ledger.PaymentsMade) {
		return nil, fmt.Errorf("%w: refund %s exceeds payments made %s",
			ErrValidation, in.Amount.StringFixed(2), ledger.PaymentsMade.StringFixed(2))
	}

	refund := model.RefundModel{
		RefundStudentID:     in.StudentID,
		RefundAmount:        in.Amount,
		RefundReason:        in.Reason,
		RefundMethodID:      in.MethodID,
		RefundStatus:        model.RefundPending,
		RefundRequestedByID: in.RequestedBy,
	}
	if err := db.Create(&refund).Error; err != nil {
		return nil, err
	}
	return &refund, nil
}

// ReviewRefund moves a pending refund to approved or rejected. The approver
// must not be the requester.
func ReviewRefund(db *gorm.DB, refundID uuid.UUID, next model.RefundStatus, reviewerID uuid.UUID) (*model.RefundModel, error) {
	if next != model.RefundApproved && next != model.RefundRejected {
		return nil, fmt.Errorf("%w: review outcome must be approved or rejected", ErrValidation)
	}
	var refund model.RefundModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("refund_id = ?", refundID).First(&refund).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: refund %s", ErrNotFound, refundID)
			}
			return err
		}
		if !refund.RefundStatus.CanTransitionTo(next) {
			return fmt.Errorf("%w: refund is %s, cannot move to %s", ErrValidation, refund.RefundStatus, next)
		}
		if next == model.RefundApproved && refund.RefundRequestedByID == reviewerID {
			return fmt.Errorf("%w: a refund cannot be approved by its requester", ErrValidation)
		}
		updates := map[string]interface{}{"refund_status": next}
		if next == model.RefundApproved {
			updates["refund_approved_by_id"] = reviewerID
		}
		if err := tx.Model(&model.RefundModel{}).
			Where("refund_id = ?", refundID).Updates(updates).Error; err != nil {
			return err
		}
		refund.RefundStatus = next
		if next == model.RefundApproved {
			refund.RefundApprovedByID = &reviewerID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

// ProcessRefund pays out an approved refund: stamps processed_at, backs the
// amount out of the ledger, and writes the audit entry, all in one
// transaction.
func ProcessRefund(db *gorm.DB, refundID, processorID uuid.UUID, term academicservice.TermContext) (*model.RefundModel, error) {
	var refund model.RefundModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("refund_id = ?", refundID).First(&refund).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: refund %s", ErrNotFound, refundID)
			}
			return err
		}
		if !refund.RefundStatus.CanTransitionTo(model.RefundProcessed) {
			return fmt.Errorf("%w: refund is %s, cannot be processed", ErrValidation, refund.RefundStatus)
		}

		now := time.Now()
		if err := tx.Model(&model.RefundModel{}).
			Where("refund_id = ?", refundID).
			Updates(map[string]interface{}{
				"refund_status":       model.RefundProcessed,
				"refund_processed_at": now,
			}).Error; err != nil {
			return err
		}
		refund.RefundStatus = model.RefundProcessed
		refund.RefundProcessedAt = &now

		ledger, err := GetLedger(tx, refund.RefundStudentID, term)
		if err != nil {
			return err
		}
		if err := ApplyRefund(tx, ledger.LedgerID, refund.RefundAmount); err != nil {
			return err
		}

		return WriteAudit(tx, AuditEntry{
			UserID:      processorID,
			Action:      model.AuditRefundProcessed,
			Description: fmt.Sprintf("processed refund of %s for student %s", refund.RefundAmount.StringFixed(2), refund.RefundStudentID),
			StudentID:   &refund.RefundStudentID,
			Amount:      &refund.RefundAmount,
		})
	})
	if err != nil {
		return nil, err
	}
	return &refund, nil
}
