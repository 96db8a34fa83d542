package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/dto"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/service"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
	helperAuth "github.com/Tapiwa2010/zrp-primary-school/internals/helpers/auth"
)

type LedgerController struct {
	DB *gorm.DB
}

func NewLedgerController(db *gorm.DB) *LedgerController {
	return &LedgerController{DB: db}
}

// GET /api/admin/fees/ledgers/:student_id?academic_year_id=&term_id=
func (h *LedgerController) GetStudentLedger(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "student_id", "student ID")
	if err != nil {
		return err
	}
	tc, err := resolveTermFromQuery(c, h.DB)
	if err != nil {
		return svcError(err)
	}

	ledger, err := service.GetOrCreateLedger(h.DB, studentID, tc)
	if err != nil {
		return svcError(err)
	}
	return helper.JsonOK(c, "OK", dto.FromLedgerModel(*ledger))
}

// GET /api/student/fees/statement
// The logged-in student's own position: ledger, amount due after discounts,
// and payment history for the term.
func (h *LedgerController) GetMyStatement(c *fiber.Ctx) error {
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

	tc, err := resolveTermFromQuery(c, h.DB)
	if err != nil {
		return svcError(err)
	}

	ledger, err := service.GetOrCreateLedger(h.DB, student.StudentID, tc)
	if err != nil {
		return svcError(err)
	}
	due, err := service.AmountDue(h.DB, student.StudentID, tc)
	if err != nil {
		return svcError(err)
	}

	var payments []model.PaymentModel
	if err := h.DB.Preload("Method").
		Where("payment_student_id = ? AND payment_ledger_id = ?", student.StudentID, ledger.LedgerID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.StatementResponse{
		Ledger:    dto.FromLedgerModel(*ledger),
		AmountDue: due,
		Payments:  dto.FromPaymentModels(payments),
	})
}

// PATCH /api/admin/fees/ledgers/:ledger_id
// Corrects opening_balance/term_fees. Derived columns are recomputed in the
// same statement and the correction is audited with its reason.
func (h *LedgerController) EditLedger(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	ledgerID, err := parseIDParam(c, "ledger_id", "ledger ID")
	if err != nil {
		return err
	}

	var req dto.EditLedgerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.OpeningBalance.IsNegative() || req.TermFees.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Balances cannot be negative")
	}

	var after model.StudentLedgerModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.SetLedgerFees(tx, ledgerID, req.OpeningBalance, req.TermFees); err != nil {
			return err
		}
		if err := tx.Where("ledger_id = ?", ledgerID).First(&after).Error; err != nil {
			return err
		}
		return service.WriteAudit(tx, service.AuditEntry{
			UserID:      adminID,
			Action:      model.AuditLedgerEdited,
			Description: fmt.Sprintf("edited ledger %s: %s", ledgerID, req.Reason),
			StudentID:   &after.LedgerStudentID,
			Metadata: map[string]interface{}{
				"opening_balance": req.OpeningBalance.String(),
				"term_fees":       req.TermFees.String(),
			},
		})
	})
	if err != nil {
		return svcError(err)
	}
	return helper.JsonUpdated(c, "Ledger updated", dto.FromLedgerModel(after))
}

// PATCH /api/admin/fees/ledgers/:ledger_id/flag
func (h *LedgerController) FlagLedger(c *fiber.Ctx) error {
	ledgerID, err := parseIDParam(c, "ledger_id", "ledger ID")
	if err != nil {
		return err
	}

	var req dto.FlagLedgerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := service.SetLedgerFlag(h.DB, ledgerID, *req.Flagged, req.Notes); err != nil {
		return svcError(err)
	}
	return helper.JsonUpdated(c, "Ledger flag updated", fiber.Map{
		"ledger_id": ledgerID,
		"flagged":   *req.Flagged,
	})
}

// GET /api/admin/fees/ledgers?flagged=&in_arrears=&page=&per_page=
// The arrears worklist: every ledger for the term, filterable to those owing
// or already flagged for follow-up.
func (h *LedgerController) ListLedgers(c *fiber.Ctx) error {
	tc, err := resolveTermFromQuery(c, h.DB)
	if err != nil {
		return svcError(err)
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.StudentLedgerModel{}).
		Where("ledger_academic_year_id = ? AND ledger_term_id = ?", tc.AcademicYearID, tc.TermID)
	if c.Query("flagged") == "true" {
		base = base.Where("flagged_for_followup = ?", true)
	}
	if c.Query("in_arrears") == "true" {
		base = base.Where("outstanding_balance > 0")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentLedgerModel
	if err := base.
		Order("outstanding_balance DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromLedgerModels(list), &p)
}
