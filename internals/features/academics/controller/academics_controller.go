package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/dto"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/service"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
)

type AcademicsController struct {
	DB *gorm.DB
}

func NewAcademicsController(db *gorm.DB) *AcademicsController {
	return &AcademicsController{DB: db}
}

var validate = validator.New()

/* ======================= ACADEMIC YEARS ======================= */

// POST /api/admin/academics/years
func (h *AcademicsController) CreateAcademicYear(c *fiber.Ctx) error {
	var req dto.CreateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Academic year already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create academic year")
	}
	return helper.JsonCreated(c, "Academic year created", m)
}

// GET /api/admin/academics/years
func (h *AcademicsController) ListAcademicYears(c *fiber.Ctx) error {
	var list []model.AcademicYearModel
	if err := h.DB.Order("academic_year_name DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

// PATCH /api/admin/academics/years/:id/set-current
func (h *AcademicsController) SetCurrentAcademicYear(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid academic year ID")
	}
	if err := service.SetCurrentAcademicYear(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Current academic year set", fiber.Map{"academic_year_id": id})
}

/* ======================= TERMS ======================= */

// POST /api/admin/academics/terms
func (h *AcademicsController) CreateTerm(c *fiber.Ctx) error {
	var req dto.CreateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Term already exists for that academic year")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create term")
	}
	return helper.JsonCreated(c, "Term created", m)
}

// GET /api/admin/academics/terms?year_id=
func (h *AcademicsController) ListTerms(c *fiber.Ctx) error {
	q := h.DB.Model(&model.TermModel{})
	if raw := strings.TrimSpace(c.Query("year_id")); raw != "" {
		yearID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid year_id")
		}
		q = q.Where("term_academic_year_id = ?", yearID)
	}
	var list []model.TermModel
	if err := q.Order("term_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

// PATCH /api/admin/academics/terms/:id/set-current
func (h *AcademicsController) SetCurrentTerm(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid term ID")
	}
	if err := service.SetCurrentTerm(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Term not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Current term set", fiber.Map{"term_id": id})
}

/* ======================= GRADES & CLASSROOMS ======================= */

// POST /api/admin/academics/grades
func (h *AcademicsController) CreateGrade(c *fiber.Ctx) error {
	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := &model.GradeModel{GradeName: req.GradeName}
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Grade already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create grade")
	}
	return helper.JsonCreated(c, "Grade created", m)
}

// GET /api/admin/academics/grades
func (h *AcademicsController) ListGrades(c *fiber.Ctx) error {
	var list []model.GradeModel
	if err := h.DB.Order("grade_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

// POST /api/admin/academics/classrooms
func (h *AcademicsController) CreateClassRoom(c *fiber.Ctx) error {
	var req dto.CreateClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := &model.ClassRoomModel{
		ClassRoomName:    req.ClassRoomName,
		ClassRoomGradeID: req.ClassRoomGradeID,
	}
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Classroom already exists for that grade")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create classroom")
	}
	return helper.JsonCreated(c, "Classroom created", m)
}

/* ======================= STUDENTS ======================= */

// POST /api/admin/academics/students
func (h *AcademicsController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Student profile already exists for that user")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", dto.FromStudentModel(*m))
}

// GET /api/admin/academics/students?grade_id=&page=&per_page=
func (h *AcademicsController) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.StudentModel{})
	if raw := strings.TrimSpace(c.Query("grade_id")); raw != "" {
		gradeID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid grade_id")
		}
		base = base.Where("student_grade_id = ?", gradeID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentModel
	if err := base.
		Preload("User").Preload("Grade").
		Order("student_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromStudentModels(list), &p)
}
