package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/dto"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/service"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
	helperAuth "github.com/Tapiwa2010/zrp-primary-school/internals/helpers/auth"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// POST /api/admin/fees/payments
// Bursar flow: record, verify, apply to ledger and receipt in one shot.
func (h *PaymentController) RecordPayment(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tc, err := resolveTermFrom(h.DB, req.AcademicYearID, req.TermID)
	if err != nil {
		return svcError(err)
	}

	result, err := service.RecordPayment(h.DB, service.RecordPaymentInput{
		StudentID:  req.StudentID,
		Amount:     req.Amount,
		MethodID:   req.MethodID,
		Reference:  req.Reference,
		Date:       req.Date,
		Notes:      req.Notes,
		RecordedBy: adminID,
		Term:       tc,
	})
	if err != nil {
		return svcError(err)
	}

	receipt := dto.FromReceiptModel(*result.Receipt)
	ledger := dto.FromLedgerModel(*result.Ledger)
	return helper.JsonCreated(c, "Payment recorded", dto.PaymentWithReceiptResponse{
		Payment: dto.FromPaymentModel(*result.Payment),
		Receipt: &receipt,
		Ledger:  &ledger,
	})
}

// POST /api/student/fees/payments
// Student/parent flow: the payment sits pending until reviewed.
func (h *PaymentController) SubmitPayment(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var student academicmodel.StudentModel
	if err := h.DB.Where("student_user_id = ?", userID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No student profile for this account")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	payment, err := service.SubmitPayment(h.DB, service.RecordPaymentInput{
		StudentID:  student.StudentID,
		Amount:     req.Amount,
		MethodID:   req.MethodID,
		Reference:  req.Reference,
		Date:       req.Date,
		Notes:      req.Notes,
		ProofPath:  req.ProofPath,
		RecordedBy: userID,
	})
	if err != nil {
		return svcError(err)
	}
	return helper.JsonCreated(c, "Payment submitted for review", dto.FromPaymentModel(*payment))
}

// PATCH /api/admin/fees/payments/:id/review
// Moves a pending payment to verified/failed/cancelled. Verification issues
// the receipt.
func (h *PaymentController) ReviewPayment(c *fiber.Ctx) error {
	reviewerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paymentID, err := parseIDParam(c, "id", "payment ID")
	if err != nil {
		return err
	}

	var req dto.ReviewPaymentRequest
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

	result, err := service.ReviewPayment(h.DB, paymentID, model.PaymentStatus(req.Status), reviewerID, tc)
	if err != nil {
		return svcError(err)
	}

	resp := dto.PaymentWithReceiptResponse{Payment: dto.FromPaymentModel(*result.Payment)}
	if result.Receipt != nil {
		receipt := dto.FromReceiptModel(*result.Receipt)
		resp.Receipt = &receipt
	}
	if result.Ledger != nil {
		ledger := dto.FromLedgerModel(*result.Ledger)
		resp.Ledger = &ledger
	}
	return helper.JsonUpdated(c, "Payment reviewed", resp)
}

// GET /api/admin/fees/payments?student_id=&status=&page=&per_page=
func (h *PaymentController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.PaymentModel{})
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id")
		}
		base = base.Where("payment_student_id = ?", studentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("payment_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PaymentModel
	if err := base.
		Preload("Method").
		Order("payment_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromPaymentModels(list), &p)
}

// GET /api/fees/receipts/:number
// Receipt lookup by public number, e.g. for reprints or parent verification.
func (h *PaymentController) GetReceipt(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	if number == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing receipt number")
	}
	receipt, err := service.GetReceiptByNumber(h.DB, number)
	if err != nil {
		return svcError(err)
	}
	return helper.JsonOK(c, "OK", dto.FromReceiptModel(*receipt))
}

// GET /api/fees/methods
func (h *PaymentController) ListPaymentMethods(c *fiber.Ctx) error {
	var list []model.PaymentMethodModel
	if err := h.DB.Where("payment_method_is_active = ?", true).
		Order("payment_method_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromPaymentMethodModels(list))
}
