package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/dto"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/service"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
	helperAuth "github.com/Tapiwa2010/zrp-primary-school/internals/helpers/auth"
)

type AdjustmentController struct {
	DB *gorm.DB
}

func NewAdjustmentController(db *gorm.DB) *AdjustmentController {
	return &AdjustmentController{DB: db}
}

/* ======================= DISCOUNTS ======================= */

// POST /api/admin/fees/discounts
func (h *AdjustmentController) GrantDiscount(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GrantDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	discount, err := service.GrantDiscount(h.DB, service.GrantDiscountInput{
		StudentID:   req.StudentID,
		Type:        model.DiscountType(req.Type),
		Percentage:  req.Percentage,
		FixedAmount: req.FixedAmount,
		Reason:      req.Reason,
		ApprovedBy:  adminID,
	})
	if err != nil {
		return svcError(err)
	}
	return helper.JsonCreated(c, "Discount granted", dto.FromDiscountModel(*discount))
}

// GET /api/admin/fees/discounts?student_id=&active=
func (h *AdjustmentController) ListDiscounts(c *fiber.Ctx) error {
	q := h.DB.Model(&model.DiscountModel{})
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("discount_student_id = ?", studentID)
	}
	if c.Query("active") == "true" {
		q = q.Where("discount_is_active = ?", true)
	}

	var list []model.DiscountModel
	if err := q.Order("discount_approved_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromDiscountModels(list))
}

// DELETE /api/admin/fees/discounts/:id
func (h *AdjustmentController) RevokeDiscount(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "discount ID")
	if err != nil {
		return err
	}
	if err := service.RevokeDiscount(h.DB, id); err != nil {
		return svcError(err)
	}
	return helper.JsonDeleted(c, "Discount revoked", fiber.Map{"discount_id": id})
}

/* ======================= PAYMENT PLANS ======================= */

// POST /api/admin/fees/plans
func (h *AdjustmentController) CreatePlan(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	plan, err := service.CreatePaymentPlan(h.DB, service.CreatePlanInput{
		StudentID:    req.StudentID,
		TotalAmount:  req.TotalAmount,
		Installments: req.Installments,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		CreatedBy:    adminID,
	})
	if err != nil {
		return svcError(err)
	}
	return helper.JsonCreated(c, "Payment plan created", dto.FromPlanModel(*plan))
}

// PATCH /api/admin/fees/plans/:id/status
func (h *AdjustmentController) SetPlanStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "plan ID")
	if err != nil {
		return err
	}

	var req dto.SetPlanStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := service.SetPlanStatus(h.DB, id, model.PaymentPlanStatus(req.Status)); err != nil {
		return svcError(err)
	}
	return helper.JsonUpdated(c, "Plan status updated", fiber.Map{
		"plan_id": id,
		"status":  req.Status,
	})
}

// GET /api/admin/fees/plans?student_id=&status=
func (h *AdjustmentController) ListPlans(c *fiber.Ctx) error {
	q := h.DB.Model(&model.PaymentPlanModel{})
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("plan_student_id = ?", studentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("plan_status = ?", status)
	}

	var list []model.PaymentPlanModel
	if err := q.Order("plan_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromPlanModels(list))
}

/* ======================= REFUNDS ======================= */

// POST /api/admin/fees/refunds
func (h *AdjustmentController) RequestRefund(c *fiber.Ctx) error {
	requesterID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RequestRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tc, err := resolveTermFromQuery(c, h.DB)
	if err != nil {
		return svcError(err)
	}

	refund, err := service.RequestRefund(h.DB, service.RequestRefundInput{
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		Reason:      req.Reason,
		MethodID:    req.MethodID,
		RequestedBy: requesterID,
		Term:        tc,
	})
	if err != nil {
		return svcError(err)
	}
	return helper.JsonCreated(c, "Refund requested", dto.FromRefundModel(*refund))
}

// PATCH /api/admin/fees/refunds/:id/review
func (h *AdjustmentController) ReviewRefund(c *fiber.Ctx) error {
	reviewerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id", "refund ID")
	if err != nil {
		return err
	}

	var req dto.ReviewRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	refund, err := service.ReviewRefund(h.DB, id, model.RefundStatus(req.Status), reviewerID)
	if err != nil {
		return svcError(err)
	}
	return helper.JsonUpdated(c, "Refund reviewed", dto.FromRefundModel(*refund))
}

// PATCH /api/admin/fees/refunds/:id/process
func (h *AdjustmentController) ProcessRefund(c *fiber.Ctx) error {
	processorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id", "refund ID")
	if err != nil {
		return err
	}

	tc, err := resolveTermFromQuery(c, h.DB)
	if err != nil {
		return svcError(err)
	}

	refund, err := service.ProcessRefund(h.DB, id, processorID, tc)
	if err != nil {
		return svcError(err)
	}
	return helper.JsonUpdated(c, "Refund processed", dto.FromRefundModel(*refund))
}

// GET /api/admin/fees/refunds?student_id=&status=
func (h *AdjustmentController) ListRefunds(c *fiber.Ctx) error {
	q := h.DB.Model(&model.RefundModel{})
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("refund_student_id = ?", studentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("refund_status = ?", status)
	}

	var list []model.RefundModel
	if err := q.Order("refund_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromRefundModels(list))
}
