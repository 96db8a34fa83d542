package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/configs"
	"github.com/Tapiwa2010/zrp-primary-school/internals/constants"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/dto"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/model"
	academicsModel "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
	authHelper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

const accessTokenTTL = 12 * time.Hour

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := h.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := issueAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromUserModel(user),
	})
}

// POST /api/auth/register
// Self-service student registration: creates the user account and the
// student profile in one transaction.
func (h *AuthController) RegisterStudent(c *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &model.UserModel{
		UserFirstName: req.FirstName,
		UserLastName:  req.LastName,
		UserEmail:     strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword:  string(hashed),
		UserRole:      constants.RoleStudent,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		student := &academicsModel.StudentModel{
			StudentUserID:      user.UserID,
			StudentGradeID:     req.GradeID,
			StudentClassRoomID: req.ClassRoomID,
			StudentIsBoarder:   req.IsBoarder,
		}
		return tx.Create(student).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "An account with that email already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Registration successful", dto.FromUserModel(*user))
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authHelper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromUserModel(user))
}

func issueAccessToken(user model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"role":      user.UserRole,
		"user_name": user.FullName(),
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
