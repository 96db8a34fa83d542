package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/dto"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
)

type AuditController struct {
	DB *gorm.DB
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{DB: db}
}

// GET /api/admin/fees/audit?student_id=&action=&page=&per_page=
// Read-only: the trail has no write endpoint beyond what the services append.
func (h *AuditController) ListAuditLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.AuditLogModel{})
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id")
		}
		base = base.Where("audit_student_id = ?", studentID)
	}
	if action := strings.TrimSpace(c.Query("action")); action != "" {
		base = base.Where("audit_action_type = ?", action)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AuditLogModel
	if err := base.
		Order("audit_timestamp DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromAuditLogModels(list), &p)
}
