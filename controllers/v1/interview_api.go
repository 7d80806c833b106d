package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruit-track-backend/controllers"
	interviewhandler "recruit-track-backend/lib/interview"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	interviewapimodels "recruit-track-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Schedule interview
// @Tags Interviews
// @Description Schedule interview, the interviewer gets a notification
// @Param	body	body	interviewapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) create(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := interviewhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get interview by ID
// @Tags Interviews
// @Description Get interview by ID, candidate and interviewer populated
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := interviewhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update interview
// @Tags Interviews
// @Description Update interview
// @Param   id	path	string	true	"rec ID"
// @Param	body	body	interviewapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [put]
func (c *interviewApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload interviewapimodels.InterviewData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete interview
// @Tags Interviews
// @Description Delete interview
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = interviewhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview deletion failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Interview list
// @Tags Interviews
// @Description Interview list, optionally narrowed to one candidate
// @Param   candidate_id	query	string	false	"candidate ID"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [get]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	candidateID := ctx.Query("candidate_id")
	resp, err := interviewhandler.Instance.List(candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
