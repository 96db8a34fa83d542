package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicservice "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/service"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/service"
)

var validate = validator.New()

// svcError translates service sentinels into HTTP errors so every controller
// maps them the same way.
func svcError(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, academicservice.ErrNoCurrentTerm):
		return fiber.NewError(fiber.StatusConflict, "No current academic year/term configured")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// resolveTermFrom pins the request to a (year, term): an explicit pair wins,
// otherwise the current flags decide.
func resolveTermFrom(db *gorm.DB, yearID, termID *uuid.UUID) (academicservice.TermContext, error) {
	if yearID != nil && termID != nil {
		return academicservice.ResolveTermContext(db, *yearID, *termID)
	}
	if yearID != nil || termID != nil {
		return academicservice.TermContext{}, fiber.NewError(
			fiber.StatusBadRequest, "academic_year_id and term_id must be supplied together")
	}
	return academicservice.ResolveCurrentTermContext(db)
}

// resolveTermFromQuery is resolveTermFrom for ?academic_year_id= and ?term_id=.
func resolveTermFromQuery(c *fiber.Ctx, db *gorm.DB) (academicservice.TermContext, error) {
	var yearID, termID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("academic_year_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return academicservice.TermContext{}, fiber.NewError(fiber.StatusBadRequest, "Invalid academic_year_id")
		}
		yearID = &id
	}
	if raw := strings.TrimSpace(c.Query("term_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return academicservice.TermContext{}, fiber.NewError(fiber.StatusBadRequest, "Invalid term_id")
		}
		termID = &id
	}
	return resolveTermFrom(db, yearID, termID)
}

func parseIDParam(c *fiber.Ctx, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+label)
	}
	return id, nil
}
