package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"recruit-track-backend/config"
	"recruit-track-backend/models"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

func GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

// SetAuthCookies attaches the pair of HTTP-only auth cookies.
// SameSite is relaxed to Lax on non-secure deployments so the local
// dashboard works without TLS.
func SetAuthCookies(ctx *fiber.Ctx, accessToken, refreshToken string) {
	secure := *config.Conf.Auth.CookieSecure
	sameSite := fiber.CookieSameSiteLaxMode
	if secure {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		Domain:   config.Conf.Auth.CookieDomain,
		MaxAge:   config.Conf.Auth.JWTExpireInSec,
		Secure:   secure,
		HTTPOnly: true,
		SameSite: sameSite,
	})
	ctx.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		Domain:   config.Conf.Auth.CookieDomain,
		MaxAge:   config.Conf.Auth.JWTRefreshExpireInSec,
		Secure:   secure,
		HTTPOnly: true,
		SameSite: sameSite,
	})
}

// ClearAuthCookies drops both cookies unconditionally, issued tokens stay
// valid until expiry since there is no server-side revocation list.
func ClearAuthCookies(ctx *fiber.Ctx) {
	secure := *config.Conf.Auth.CookieSecure
	sameSite := fiber.CookieSameSiteLaxMode
	if secure {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		ctx.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   config.Conf.Auth.CookieDomain,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			Secure:   secure,
			HTTPOnly: true,
			SameSite: sameSite,
		})
	}
}
