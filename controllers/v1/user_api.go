package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruit-track-backend/controllers"
	usershandler "recruit-track-backend/lib/users"
	apimodels "recruit-track-backend/models/api"
	userapimodels "recruit-track-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Create user
// @Tags Users
// @Description Create user, password is stored hashed and never returned
// @Param	body	body	userapimodels.UserCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.UserCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get user by ID
// @Tags Users
// @Description Get user by ID
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := usershandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update user
// @Tags Users
// @Description Update user
// @Param   id	path	string	true	"rec ID"
// @Param	body	body	userapimodels.UserEditData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload userapimodels.UserEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = usershandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete user
// @Tags Users
// @Description Delete user
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *userApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = usershandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user deletion failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary User list
// @Tags Users
// @Description User list
// @Param   page	query	int	false	"page number"
// @Param   limit	query	int	false	"rows per page"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	resp, err := usershandler.Instance.List(page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
