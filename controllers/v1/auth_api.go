package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruit-track-backend/controllers"
	authhandler "recruit-track-backend/lib/auth"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	authapimodels "recruit-track-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", controller.me)
		router.Post("logout", controller.logout)
	})
}

// @Summary User login
// @Tags Authentication
// @Description Sets the access and refresh token cookies on success
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "login failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current user info
// @Tags Authentication
// @Description Current user info
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "current user lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Logout
// @Tags Authentication
// @Description Clears the auth cookies
// @Success 200 {object} apimodels.Response
// @router /api/v1/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	authhandler.Instance.Logout(ctx)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reissue the token pair
// @Tags Authentication
// @Description Reissues both cookies from a valid refresh token cookie
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	err := authhandler.Instance.Refresh(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("invalid refresh token"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
