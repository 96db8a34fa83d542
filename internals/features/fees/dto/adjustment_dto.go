package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

/* =============== DISCOUNTS =============== */

type GrantDiscountRequest struct {
	StudentID   uuid.UUID       `json:"student_id" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=sibling early_payment full_scholarship partial_scholarship staff_child hardship"`
	Percentage  decimal.Decimal `json:"percentage"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
	Reason      string          `json:"reason" validate:"required,min=5"`
}

type DiscountResponse struct {
	DiscountID   uuid.UUID       `json:"discount_id"`
	StudentID    uuid.UUID       `json:"student_id"`
	Type         string          `json:"type"`
	Percentage   decimal.Decimal `json:"percentage"`
	FixedAmount  decimal.Decimal `json:"fixed_amount"`
	Reason       string          `json:"reason"`
	ApprovedByID uuid.UUID       `json:"approved_by_id"`
	ApprovedAt   time.Time       `json:"approved_at"`
	IsActive     bool            `json:"is_active"`
}

func FromDiscountModel(x m.DiscountModel) DiscountResponse {
	return DiscountResponse{
		DiscountID:   x.DiscountID,
		StudentID:    x.DiscountStudentID,
		Type:         string(x.DiscountType),
		Percentage:   x.DiscountPercentage,
		FixedAmount:  x.DiscountFixedAmount,
		Reason:       x.DiscountReason,
		ApprovedByID: x.DiscountApprovedByID,
		ApprovedAt:   x.DiscountApprovedAt,
		IsActive:     x.DiscountIsActive,
	}
}

func FromDiscountModels(list []m.DiscountModel) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromDiscountModel(it))
	}
	return out
}

/* =============== PAYMENT PLANS =============== */

type CreatePlanRequest struct {
	StudentID    uuid.UUID       `json:"student_id" validate:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Installments int             `json:"installments" validate:"required,min=1,max=12"`
	StartDate    time.Time       `json:"start_date" validate:"required"`
	EndDate      time.Time       `json:"end_date" validate:"required,gtfield=StartDate"`
}

type SetPlanStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled defaulted"`
}

type PlanResponse struct {
	PlanID            uuid.UUID       `json:"plan_id"`
	StudentID         uuid.UUID       `json:"student_id"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Installments      int             `json:"installments"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	Status            string          `json:"status"`
	CreatedByID       uuid.UUID       `json:"created_by_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

func FromPlanModel(x m.PaymentPlanModel) PlanResponse {
	return PlanResponse{
		PlanID:            x.PlanID,
		StudentID:         x.PlanStudentID,
		TotalAmount:       x.PlanTotalAmount,
		Installments:      x.PlanInstallments,
		InstallmentAmount: x.PlanInstallmentAmount,
		StartDate:         x.PlanStartDate,
		EndDate:           x.PlanEndDate,
		Status:            string(x.PlanStatus),
		CreatedByID:       x.PlanCreatedByID,
		CreatedAt:         x.PlanCreatedAt,
	}
}

func FromPlanModels(list []m.PaymentPlanModel) []PlanResponse {
	out := make([]PlanResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromPlanModel(it))
	}
	return out
}

/* =============== REFUNDS =============== */

type RequestRefundRequest struct {
	StudentID uuid.UUID       `json:"student_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason" validate:"required,min=5"`
	MethodID  uuid.UUID       `json:"method_id" validate:"required"`
}

type ReviewRefundRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type RefundResponse struct {
	RefundID      uuid.UUID       `json:"refund_id"`
	StudentID     uuid.UUID       `json:"student_id"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	MethodID      uuid.UUID       `json:"method_id"`
	Status        string          `json:"status"`
	RequestedByID uuid.UUID       `json:"requested_by_id"`
	ApprovedByID  *uuid.UUID      `json:"approved_by_id,omitempty"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func FromRefundModel(x m.RefundModel) RefundResponse {
	return RefundResponse{
		RefundID:      x.RefundID,
		StudentID:     x.RefundStudentID,
		Amount:        x.RefundAmount,
		Reason:        x.RefundReason,
		MethodID:      x.RefundMethodID,
		Status:        string(x.RefundStatus),
		RequestedByID: x.RefundRequestedByID,
		ApprovedByID:  x.RefundApprovedByID,
		ProcessedAt:   x.RefundProcessedAt,
		CreatedAt:     x.RefundCreatedAt,
	}
}

func FromRefundModels(list []m.RefundModel) []RefundResponse {
	out := make([]RefundResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromRefundModel(it))
	}
	return out
}
