package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruit-track-backend/controllers"
	hiringrequesthandler "recruit-track-backend/lib/hiring-request"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	hiringrequestapimodels "recruit-track-backend/models/api/hiring-request"
)

type hiringRequestApiController struct {
	controllers.BaseAPIController
}

func InitHiringRequestApiRouters(app *fiber.App) {
	controller := hiringRequestApiController{}
	app.Route("hiring-requests", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_status", controller.changeStatus)
		})
	})
}

// @Summary Create hiring request
// @Tags Hiring requests
// @Description Create hiring request
// @Param	body	body	hiringrequestapimodels.HiringRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-requests [post]
func (c *hiringRequestApiController) create(ctx *fiber.Ctx) error {
	var payload hiringrequestapimodels.HiringRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := hiringrequesthandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "hiring request creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get hiring request by ID
// @Tags Hiring requests
// @Description Get hiring request by ID, recruiter populated
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=hiringrequestapimodels.HiringRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-requests/{id} [get]
func (c *hiringRequestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringrequesthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "hiring request lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update hiring request
// @Tags Hiring requests
// @Description Update hiring request
// @Param   id	path	string	true	"rec ID"
// @Param	body	body	hiringrequestapimodels.HiringRequestData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-requests/{id} [put]
func (c *hiringRequestApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringrequestapimodels.HiringRequestData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = hiringrequesthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "hiring request update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete hiring request
// @Tags Hiring requests
// @Description Delete hiring request, attached candidates are kept
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-requests/{id} [delete]
func (c *hiringRequestApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = hiringrequesthandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "hiring request deletion failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Hiring request list
// @Tags Hiring requests
// @Description Hiring request list with status and text filter
// @Param	body	body	hiringrequestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]hiringrequestapimodels.HiringRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-requests/list [post]
func (c *hiringRequestApiController) list(ctx *fiber.Ctx) error {
	var payload hiringrequestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := hiringrequesthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "hiring request list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Change hiring request status
// @Tags Hiring requests
// @Description Change hiring request status
// @Param   id	path	string	true	"rec ID"
// @Param	body	body	hiringrequestapimodels.StatusChangeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hiring-requests/{id}/change_status [put]
func (c *hiringRequestApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload hiringrequestapimodels.StatusChangeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = hiringrequesthandler.Instance.ChangeStatus(id, userID, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "hiring request status change failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
