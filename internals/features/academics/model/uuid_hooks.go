package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are generated app-side so the models behave identically on postgres and
// the sqlite test database.

func (m *AcademicYearModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademicYearID == uuid.Nil {
		m.AcademicYearID = uuid.New()
	}
	return nil
}

func (m *TermModel) BeforeCreate(tx *gorm.DB) error {
	if m.TermID == uuid.Nil {
		m.TermID = uuid.New()
	}
	return nil
}

func (m *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}

func (m *ClassRoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassRoomID == uuid.Nil {
		m.ClassRoomID = uuid.New()
	}
	return nil
}

func (m *TeacherAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherAssignmentID == uuid.Nil {
		m.TeacherAssignmentID = uuid.New()
	}
	return nil
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
