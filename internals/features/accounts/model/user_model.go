package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table. Students, teachers and admins all
// live here; student academic details hang off academics.StudentModel.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserFirstName string    `gorm:"column:user_first_name;size:50;not null" json:"user_first_name"`
	UserLastName  string    `gorm:"column:user_last_name;size:50;not null" json:"user_last_name"`
	UserEmail     string    `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;not null" json:"-"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

// BeforeCreate generates the ID app-side so the model behaves identically on
// postgres and the sqlite test database.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

func (u *UserModel) FullName() string {
	return u.UserFirstName + " " + u.UserLastName
}
