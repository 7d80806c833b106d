package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"recruit-track-backend/config"
	apimodels "recruit-track-backend/models/api"
)

// AuthorizationRequired verifies the access token cookie set on login.
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		TokenLookup: "cookie:accessToken",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("authorization required"))
		},
	})
}
