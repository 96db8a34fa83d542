package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
)

// TermContext pins a ledger or payment operation to one (academic year, term)
// pair. It is resolved once at the controller edge and passed down explicitly;
// services never consult the is_current flags themselves.
type TermContext struct {
	AcademicYearID uuid.UUID
	TermID         uuid.UUID
}

var ErrNoCurrentTerm = errors.New("no current academic year/term configured")

// ResolveCurrentTermContext reads the is_current flags. Used by controllers
// when the request does not name a year/term explicitly.
func ResolveCurrentTermContext(db *gorm.DB) (TermContext, error) {
	var year model.AcademicYearModel
	if err := db.Where("academic_year_is_current = ?", true).First(&year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TermContext{}, ErrNoCurrentTerm
		}
		return TermContext{}, err
	}

	var term model.TermModel
	if err := db.Where("term_is_current = ? AND term_academic_year_id = ?", true, year.AcademicYearID).
		First(&term).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TermContext{}, ErrNoCurrentTerm
		}
		return TermContext{}, err
	}

	return TermContext{AcademicYearID: year.AcademicYearID, TermID: term.TermID}, nil
}

// ResolveTermContext validates an explicitly requested (year, term) pair.
func ResolveTermContext(db *gorm.DB, yearID, termID uuid.UUID) (TermContext, error) {
	var term model.TermModel
	if err := db.Where("term_id = ? AND term_academic_year_id = ?", termID, yearID).
		First(&term).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TermContext{}, ErrNoCurrentTerm
		}
		return TermContext{}, err
	}
	return TermContext{AcademicYearID: yearID, TermID: termID}, nil
}

// SetCurrentAcademicYear flips is_current to the given year, clearing the rest.
func SetCurrentAcademicYear(db *gorm.DB, yearID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_is_current = ?", true).
			Update("academic_year_is_current", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_id = ?", yearID).
			Update("academic_year_is_current", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SetCurrentTerm flips is_current to the given term, clearing the rest.
func SetCurrentTerm(db *gorm.DB, termID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TermModel{}).
			Where("term_is_current = ?", true).
			Update("term_is_current", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.TermModel{}).
			Where("term_id = ?", termID).
			Update("term_is_current", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
