package dto

import (
	"github.com/google/uuid"

	m "github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/model"
)

/* =============== REQUESTS =============== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterStudentRequest struct {
	FirstName   string     `json:"first_name" validate:"required,min=1,max=50"`
	LastName    string     `json:"last_name" validate:"required,min=1,max=50"`
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=8"`
	GradeID     uuid.UUID  `json:"grade_id" validate:"required"`
	ClassRoomID *uuid.UUID `json:"class_room_id" validate:"omitempty"`
	IsBoarder   bool       `json:"is_boarder"`
}

/* =============== RESPONSES =============== */

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

func FromUserModel(x m.UserModel) UserResponse {
	return UserResponse{
		UserID:    x.UserID,
		FirstName: x.UserFirstName,
		LastName:  x.UserLastName,
		Email:     x.UserEmail,
		Role:      x.UserRole,
	}
}
