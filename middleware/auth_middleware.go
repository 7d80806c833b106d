package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	apimodels "recruit-track-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if stringName, ok := name.(string); ok {
			return stringName
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func HRManagerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsHRManager() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not allowed"))
		}
		return ctx.Next()
	}
}
