package authhandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit-track-backend/config"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	authapimodels "recruit-track-backend/models/api/auth"
	dbmodels "recruit-track-backend/models/db"
)

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	secure := false
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "unit-test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 7200
	conf.Auth.CookieSecure = &secure
	config.Conf = conf

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.User{}))

	handler := NewHandlerWithDB(database)
	app := fiber.New()
	app.Post("/login", func(ctx *fiber.Ctx) error {
		var payload authapimodels.LoginRequest
		require.Nil(t, ctx.BodyParser(&payload))
		resp, err := handler.Login(ctx, payload.Username, payload.Password)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		return ctx.JSON(resp)
	})
	return app, database
}

func addUser(t *testing.T, database *gorm.DB, username, password string) {
	rec := dbmodels.User{
		Username: username,
		Role:     models.UserRoleRecruiter,
		IsActive: true,
	}
	require.Nil(t, rec.SetPassword(password))
	require.Nil(t, database.Create(&rec).Error)
}

func doLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	body, err := json.Marshal(authapimodels.LoginRequest{Username: username, Password: password})
	require.Nil(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	return resp
}

func TestLogin(t *testing.T) {
	app, database := setupTest(t)
	addUser(t, database, "recruiter", "correct-pass")

	t.Run(`both auth cookies set on success`, func(t *testing.T) {
		resp := doLogin(t, app, "recruiter", "correct-pass")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cookies := map[string]*http.Cookie{}
		for _, cookie := range resp.Cookies() {
			cookies[cookie.Name] = cookie
		}
		access, ok := cookies[authutils.AccessTokenCookie]
		require.True(t, ok)
		refresh, ok := cookies[authutils.RefreshTokenCookie]
		require.True(t, ok)
		require.NotEmpty(t, access.Value)
		require.NotEmpty(t, refresh.Value)
		require.NotEqual(t, access.Value, refresh.Value)
		require.True(t, access.HttpOnly)
		require.True(t, refresh.HttpOnly)

		claims, err := authutils.ParseToken(access.Value)
		require.Nil(t, err)
		require.Equal(t, "recruiter", claims["name"])
		require.Equal(t, string(models.UserRoleRecruiter), claims["role"])
	})

	t.Run(`wrong password and unknown user are not distinguishable`, func(t *testing.T) {
		wrongPass := doLogin(t, app, "recruiter", "wrong-pass")
		unknownUser := doLogin(t, app, "nobody", "correct-pass")
		require.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
		require.Equal(t, http.StatusUnauthorized, unknownUser.StatusCode)

		require.Equal(t, readBody(t, wrongPass), readBody(t, unknownUser))
		require.Empty(t, wrongPass.Cookies())
		require.Empty(t, unknownUser.Cookies())
	})
}

func readBody(t *testing.T, resp *http.Response) string {
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	require.Nil(t, err)
	return buf.String()
}
