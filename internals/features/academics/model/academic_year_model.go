package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicYearModel represents an academic year, e.g. "2025".
type AcademicYearModel struct {
	AcademicYearID        uuid.UUID `gorm:"column:academic_year_id;type:uuid;primaryKey" json:"academic_year_id"`
	AcademicYearName      string    `gorm:"column:academic_year_name;size:20;uniqueIndex;not null" json:"academic_year_name"`
	AcademicYearStartDate time.Time `gorm:"column:academic_year_start_date;not null" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"column:academic_year_end_date;not null" json:"academic_year_end_date"`
	AcademicYearIsCurrent bool      `gorm:"column:academic_year_is_current;not null;default:false;index" json:"academic_year_is_current"`
	AcademicYearCreatedAt time.Time `gorm:"column:academic_year_created_at;autoCreateTime" json:"academic_year_created_at"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

type TermName string

const (
	TermOne   TermName = "term1"
	TermTwo   TermName = "term2"
	TermThree TermName = "term3"
)

// TermModel represents a school term within an academic year.
type TermModel struct {
	TermID             uuid.UUID `gorm:"column:term_id;type:uuid;primaryKey" json:"term_id"`
	TermName           TermName  `gorm:"column:term_name;type:varchar(10);not null;uniqueIndex:uniq_term_per_year,priority:2" json:"term_name"`
	TermAcademicYearID uuid.UUID `gorm:"column:term_academic_year_id;type:uuid;not null;index;uniqueIndex:uniq_term_per_year,priority:1" json:"term_academic_year_id"`
	TermStartDate      time.Time `gorm:"column:term_start_date;not null" json:"term_start_date"`
	TermEndDate        time.Time `gorm:"column:term_end_date;not null" json:"term_end_date"`
	TermIsCurrent      bool      `gorm:"column:term_is_current;not null;default:false;index" json:"term_is_current"`
	TermCreatedAt      time.Time `gorm:"column:term_created_at;autoCreateTime" json:"term_created_at"`

	AcademicYear *AcademicYearModel `gorm:"foreignKey:TermAcademicYearID;references:AcademicYearID" json:"academic_year,omitempty"`
}

func (TermModel) TableName() string { return "terms" }

func ValidTermName(name TermName) bool {
	switch name {
	case TermOne, TermTwo, TermThree:
		return true
	}
	return false
}
