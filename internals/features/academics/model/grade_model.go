package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeModel represents a grade level, e.g. "ECD A", "Grade 1".
type GradeModel struct {
	GradeID        uuid.UUID `gorm:"column:grade_id;type:uuid;primaryKey" json:"grade_id"`
	GradeName      string    `gorm:"column:grade_name;size:20;uniqueIndex;not null" json:"grade_name"`
	GradeCreatedAt time.Time `gorm:"column:grade_created_at;autoCreateTime" json:"grade_created_at"`
}

func (GradeModel) TableName() string { return "grades" }

// ClassRoomModel represents a stream within a grade, e.g. "A", "B".
type ClassRoomModel struct {
	ClassRoomID        uuid.UUID `gorm:"column:class_room_id;type:uuid;primaryKey" json:"class_room_id"`
	ClassRoomName      string    `gorm:"column:class_room_name;size:10;not null;uniqueIndex:uniq_room_per_grade,priority:2" json:"class_room_name"`
	ClassRoomGradeID   uuid.UUID `gorm:"column:class_room_grade_id;type:uuid;not null;index;uniqueIndex:uniq_room_per_grade,priority:1" json:"class_room_grade_id"`
	ClassRoomCreatedAt time.Time `gorm:"column:class_room_created_at;autoCreateTime" json:"class_room_created_at"`

	Grade *GradeModel `gorm:"foreignKey:ClassRoomGradeID;references:GradeID" json:"grade,omitempty"`
}

func (ClassRoomModel) TableName() string { return "class_rooms" }

// TeacherAssignmentModel links a teacher user to the grades and classrooms
// they are responsible for.
type TeacherAssignmentModel struct {
	TeacherAssignmentID          uuid.UUID  `gorm:"column:teacher_assignment_id;type:uuid;primaryKey" json:"teacher_assignment_id"`
	TeacherAssignmentUserID      uuid.UUID  `gorm:"column:teacher_assignment_user_id;type:uuid;not null;index" json:"teacher_assignment_user_id"`
	TeacherAssignmentGradeID     uuid.UUID  `gorm:"column:teacher_assignment_grade_id;type:uuid;not null;index" json:"teacher_assignment_grade_id"`
	TeacherAssignmentClassRoomID *uuid.UUID `gorm:"column:teacher_assignment_class_room_id;type:uuid;index" json:"teacher_assignment_class_room_id,omitempty"`
	TeacherAssignmentCreatedAt   time.Time  `gorm:"column:teacher_assignment_created_at;autoCreateTime" json:"teacher_assignment_created_at"`
}

func (TeacherAssignmentModel) TableName() string { return "teacher_assignments" }
