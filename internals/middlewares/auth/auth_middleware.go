package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/configs"
	accountsModel "github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/model"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token parse error")
		}

		if err := validateTokenExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		if role, ok := claims["role"].(string); ok {
			c.Locals("userRole", role)
		}
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("userName", name)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(prefix) && strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):]), nil
	}
	return "", errors.New("missing or malformed Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var user accountsModel.UserModel
	if err := db.Select("user_id", "user_is_active").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return err
	}
	if !user.UserIsActive {
		return errors.New("user deactivated")
	}
	return nil
}
