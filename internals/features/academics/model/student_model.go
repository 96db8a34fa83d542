package model

import (
	"time"

	"github.com/google/uuid"

	accountsModel "github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/model"
)

// StudentModel represents a student profile attached 1:1 to a user account.
type StudentModel struct {
	StudentID          uuid.UUID  `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentUserID      uuid.UUID  `gorm:"column:student_user_id;type:uuid;uniqueIndex;not null" json:"student_user_id"`
	StudentGradeID     uuid.UUID  `gorm:"column:student_grade_id;type:uuid;not null;index" json:"student_grade_id"`
	StudentClassRoomID *uuid.UUID `gorm:"column:student_class_room_id;type:uuid;index" json:"student_class_room_id,omitempty"`
	StudentIsBoarder   bool       `gorm:"column:student_is_boarder;not null;default:false" json:"student_is_boarder"`
	StudentCreatedAt   time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt   time.Time  `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`

	User      *accountsModel.UserModel `gorm:"foreignKey:StudentUserID;references:UserID" json:"user,omitempty"`
	Grade     *GradeModel              `gorm:"foreignKey:StudentGradeID;references:GradeID" json:"grade,omitempty"`
	ClassRoom *ClassRoomModel          `gorm:"foreignKey:StudentClassRoomID;references:ClassRoomID" json:"class_room,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
