package controller

import (
	"errors"
	"fmt"
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

type FeeStructureController struct {
	DB *gorm.DB
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db}
}

// POST /api/admin/fees/structures
// Creates the fee structure for a (year, term, grade, scholar type) slot, or
// replaces the amounts if the slot already has one. Every change is audited.
func (h *FeeStructureController) UpsertFeeStructure(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	for _, amount := range req.Components() {
		if amount.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Fee components cannot be negative")
		}
	}

	m := req.ToModel()
	created := true
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.FeeStructureModel
		findErr := tx.Where(
			"fee_structure_academic_year_id = ? AND fee_structure_term_id = ? AND fee_structure_grade_id = ? AND fee_structure_is_day_scholar = ?",
			m.FeeStructureAcademicYearID, m.FeeStructureTermID, m.FeeStructureGradeID, m.FeeStructureIsDayScholar,
		).First(&existing).Error

		switch {
		case findErr == nil:
			created = false
			m.FeeStructureID = existing.FeeStructureID
			m.FeeStructureCreatedAt = existing.FeeStructureCreatedAt
			if err := tx.Save(m).Error; err != nil {
				return err
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		default:
			return findErr
		}

		verb := "updated"
		if created {
			verb = "created"
		}
		return service.WriteAudit(tx, service.AuditEntry{
			UserID:      adminID,
			Action:      model.AuditFeeStructureChanged,
			Description: fmt.Sprintf("%s fee structure %s (total %s)", verb, m.FeeStructureID, m.TotalFee.StringFixed(2)),
			Amount:      &m.TotalFee,
			Metadata: map[string]interface{}{
				"grade_id":       m.FeeStructureGradeID.String(),
				"term_id":        m.FeeStructureTermID.String(),
				"is_day_scholar": m.FeeStructureIsDayScholar,
			},
		})
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Fee structure already exists for that slot")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save fee structure")
	}

	if created {
		return helper.JsonCreated(c, "Fee structure created", dto.FromFeeStructureModel(*m))
	}
	return helper.JsonUpdated(c, "Fee structure updated", dto.FromFeeStructureModel(*m))
}

// GET /api/admin/fees/structures?academic_year_id=&term_id=&grade_id=
func (h *FeeStructureController) ListFeeStructures(c *fiber.Ctx) error {
	q := h.DB.Model(&model.FeeStructureModel{})
	for param, column := range map[string]string{
		"academic_year_id": "fee_structure_academic_year_id",
		"term_id":          "fee_structure_term_id",
		"grade_id":         "fee_structure_grade_id",
	} {
		if raw := strings.TrimSpace(c.Query(param)); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid "+param)
			}
			q = q.Where(column+" = ?", id)
		}
	}

	var list []model.FeeStructureModel
	if err := q.Order("fee_structure_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromFeeStructureModels(list))
}

// GET /api/admin/fees/structures/:id
func (h *FeeStructureController) GetFeeStructure(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "fee structure ID")
	if err != nil {
		return err
	}
	var m model.FeeStructureModel
	if err := h.DB.Where("fee_structure_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromFeeStructureModel(m))
}

// POST /api/admin/fees/components
func (h *FeeStructureController) CreateFeeComponent(c *fiber.Ctx) error {
	var req dto.CreateFeeComponentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Fee component already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee component")
	}
	return helper.JsonCreated(c, "Fee component created", m)
}

// GET /api/admin/fees/components
func (h *FeeStructureController) ListFeeComponents(c *fiber.Ctx) error {
	var list []model.FeeComponentModel
	if err := h.DB.Order("fee_component_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}
