package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/* ==============================
   DISCOUNTS
============================== */

type DiscountType string

const (
	DiscountSibling            DiscountType = "sibling"
	DiscountEarlyPayment       DiscountType = "early_payment"
	DiscountFullScholarship    DiscountType = "full_scholarship"
	DiscountPartialScholarship DiscountType = "partial_scholarship"
	DiscountStaffChild         DiscountType = "staff_child"
	DiscountHardship           DiscountType = "hardship"
)

func ValidDiscountType(t DiscountType) bool {
	switch t {
	case DiscountSibling, DiscountEarlyPayment, DiscountFullScholarship,
		DiscountPartialScholarship, DiscountStaffChild, DiscountHardship:
		return true
	}
	return false
}

// DiscountModel is declarative: it records that a reduction exists, but the
// effective amount is computed by whoever asks "what is due" (see
// adjustment service AmountDue). The ledger itself never folds discounts in.
type DiscountModel struct {
	DiscountID           uuid.UUID       `gorm:"column:discount_id;type:uuid;primaryKey" json:"discount_id"`
	DiscountStudentID    uuid.UUID       `gorm:"column:discount_student_id;type:uuid;not null;index" json:"discount_student_id"`
	DiscountType         DiscountType    `gorm:"column:discount_type;type:varchar(20);not null" json:"discount_type"`
	DiscountPercentage   decimal.Decimal `gorm:"column:discount_percentage;type:decimal(5,2);not null;default:0" json:"discount_percentage"` // 0-100
	DiscountFixedAmount  decimal.Decimal `gorm:"column:discount_fixed_amount;type:decimal(10,2);not null;default:0" json:"discount_fixed_amount"`
	DiscountReason       string          `gorm:"column:discount_reason;type:text;not null" json:"discount_reason"`
	DiscountApprovedByID uuid.UUID       `gorm:"column:discount_approved_by_id;type:uuid;not null" json:"discount_approved_by_id"`
	DiscountApprovedAt   time.Time       `gorm:"column:discount_approved_at;autoCreateTime" json:"discount_approved_at"`
	DiscountIsActive     bool            `gorm:"column:discount_is_active;not null;default:true;index" json:"discount_is_active"`
}

func (DiscountModel) TableName() string { return "discounts" }

/* ==============================
   PAYMENT PLANS
============================== */

type PaymentPlanStatus string

const (
	PlanActive    PaymentPlanStatus = "active"
	PlanCompleted PaymentPlanStatus = "completed"
	PlanCancelled PaymentPlanStatus = "cancelled"
	PlanDefaulted PaymentPlanStatus = "defaulted"
)

// PaymentPlanModel is a fixed installment schedule. installment_amount is
// computed once at creation and does not react to later partial payments.
type PaymentPlanModel struct {
	PlanID                uuid.UUID         `gorm:"column:plan_id;type:uuid;primaryKey" json:"plan_id"`
	PlanStudentID         uuid.UUID         `gorm:"column:plan_student_id;type:uuid;not null;index" json:"plan_student_id"`
	PlanLedgerID          *uuid.UUID        `gorm:"column:plan_ledger_id;type:uuid;index" json:"plan_ledger_id,omitempty"`
	PlanTotalAmount       decimal.Decimal   `gorm:"column:plan_total_amount;type:decimal(10,2);not null" json:"plan_total_amount"`
	PlanInstallments      int               `gorm:"column:plan_installments;not null" json:"plan_installments"`
	PlanInstallmentAmount decimal.Decimal   `gorm:"column:plan_installment_amount;type:decimal(10,2);not null" json:"plan_installment_amount"`
	PlanStartDate         time.Time         `gorm:"column:plan_start_date;not null" json:"plan_start_date"`
	PlanEndDate           time.Time         `gorm:"column:plan_end_date;not null" json:"plan_end_date"`
	PlanStatus            PaymentPlanStatus `gorm:"column:plan_status;type:varchar(10);not null;default:'active';index" json:"plan_status"`
	PlanCreatedByID       uuid.UUID         `gorm:"column:plan_created_by_id;type:uuid;not null" json:"plan_created_by_id"`
	PlanCreatedAt         time.Time         `gorm:"column:plan_created_at;autoCreateTime" json:"plan_created_at"`
}

func (PaymentPlanModel) TableName() string { return "payment_plans" }

/* ==============================
   REFUNDS
============================== */

type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundApproved  RefundStatus = "approved"
	RefundProcessed RefundStatus = "processed"
	RefundRejected  RefundStatus = "rejected"
)

// CanTransitionTo enforces the one-way refund lifecycle:
// pending → approved → processed, or pending → rejected.
func (s RefundStatus) CanTransitionTo(next RefundStatus) bool {
	switch s {
	case RefundPending:
		return next == RefundApproved || next == RefundRejected
	case RefundApproved:
		return next == RefundProcessed
	}
	return false
}

type RefundModel struct {
	RefundID            uuid.UUID       `gorm:"column:refund_id;type:uuid;primaryKey" json:"refund_id"`
	RefundStudentID     uuid.UUID       `gorm:"column:refund_student_id;type:uuid;not null;index" json:"refund_student_id"`
	RefundAmount        decimal.Decimal `gorm:"column:refund_amount;type:decimal(10,2);not null" json:"refund_amount"`
	RefundReason        string          `gorm:"column:refund_reason;type:text;not null" json:"refund_reason"`
	RefundMethodID      uuid.UUID       `gorm:"column:refund_method_id;type:uuid;not null" json:"refund_method_id"`
	RefundStatus        RefundStatus    `gorm:"column:refund_status;type:varchar(10);not null;default:'pending';index" json:"refund_status"`
	RefundRequestedByID uuid.UUID       `gorm:"column:refund_requested_by_id;type:uuid;not null" json:"refund_requested_by_id"`
	RefundApprovedByID  *uuid.UUID      `gorm:"column:refund_approved_by_id;type:uuid" json:"refund_approved_by_id,omitempty"`
	RefundProcessedAt   *time.Time      `gorm:"column:refund_processed_at" json:"refund_processed_at,omitempty"`
	RefundCreatedAt     time.Time       `gorm:"column:refund_created_at;autoCreateTime" json:"refund_created_at"`
}

func (RefundModel) TableName() string { return "refunds" }
