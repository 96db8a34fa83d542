package dto

import (
	"time"

	"github.com/google/uuid"

	m "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
)

/* =============== REQUESTS =============== */

type CreateAcademicYearRequest struct {
	AcademicYearName      string    `json:"academic_year_name" validate:"required,min=4,max=20"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" validate:"required"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date" validate:"required,gtfield=AcademicYearStartDate"`
}

func (r CreateAcademicYearRequest) ToModel() *m.AcademicYearModel {
	return &m.AcademicYearModel{
		AcademicYearName:      r.AcademicYearName,
		AcademicYearStartDate: r.AcademicYearStartDate,
		AcademicYearEndDate:   r.AcademicYearEndDate,
	}
}

type CreateTermRequest struct {
	TermName           string    `json:"term_name" validate:"required,oneof=term1 term2 term3"`
	TermAcademicYearID uuid.UUID `json:"term_academic_year_id" validate:"required"`
	TermStartDate      time.Time `json:"term_start_date" validate:"required"`
	TermEndDate        time.Time `json:"term_end_date" validate:"required,gtfield=TermStartDate"`
}

func (r CreateTermRequest) ToModel() *m.TermModel {
	return &m.TermModel{
		TermName:           m.TermName(r.TermName),
		TermAcademicYearID: r.TermAcademicYearID,
		TermStartDate:      r.TermStartDate,
		TermEndDate:        r.TermEndDate,
	}
}

type CreateGradeRequest struct {
	GradeName string `json:"grade_name" validate:"required,min=1,max=20"`
}

type CreateClassRoomRequest struct {
	ClassRoomName    string    `json:"class_room_name" validate:"required,min=1,max=10"`
	ClassRoomGradeID uuid.UUID `json:"class_room_grade_id" validate:"required"`
}

type CreateStudentRequest struct {
	StudentUserID      uuid.UUID  `json:"student_user_id" validate:"required"`
	StudentGradeID     uuid.UUID  `json:"student_grade_id" validate:"required"`
	StudentClassRoomID *uuid.UUID `json:"student_class_room_id" validate:"omitempty"`
	StudentIsBoarder   bool       `json:"student_is_boarder"`
}

func (r CreateStudentRequest) ToModel() *m.StudentModel {
	return &m.StudentModel{
		StudentUserID:      r.StudentUserID,
		StudentGradeID:     r.StudentGradeID,
		StudentClassRoomID: r.StudentClassRoomID,
		StudentIsBoarder:   r.StudentIsBoarder,
	}
}

/* =============== RESPONSES =============== */

type StudentResponse struct {
	StudentID        uuid.UUID  `json:"student_id"`
	StudentUserID    uuid.UUID  `json:"student_user_id"`
	StudentName      string     `json:"student_name"`
	StudentGradeID   uuid.UUID  `json:"student_grade_id"`
	GradeName        string     `json:"grade_name,omitempty"`
	ClassRoomID      *uuid.UUID `json:"class_room_id,omitempty"`
	StudentIsBoarder bool       `json:"student_is_boarder"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromStudentModel(x m.StudentModel) StudentResponse {
	resp := StudentResponse{
		StudentID:        x.StudentID,
		StudentUserID:    x.StudentUserID,
		StudentGradeID:   x.StudentGradeID,
		ClassRoomID:      x.StudentClassRoomID,
		StudentIsBoarder: x.StudentIsBoarder,
		CreatedAt:        x.StudentCreatedAt,
	}
	if x.User != nil {
		resp.StudentName = x.User.FullName()
	}
	if x.Grade != nil {
		resp.GradeName = x.Grade.GradeName
	}
	return resp
}

func FromStudentModels(list []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromStudentModel(it))
	}
	return out
}
