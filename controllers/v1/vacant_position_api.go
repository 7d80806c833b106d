package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruit-track-backend/controllers"
	vacantpositionhandler "recruit-track-backend/lib/vacant-position"
	apimodels "recruit-track-backend/models/api"
)

type vacantPositionApiController struct {
	controllers.BaseAPIController
}

func InitVacantPositionApiRouters(app *fiber.App) {
	controller := vacantPositionApiController{}
	app.Get("vacant-positions", controller.list)
}

// @Summary Vacant positions
// @Tags Vacant positions
// @Description Hiring requests still being filled, newest first
// @Success 200 {object} apimodels.Response{data=[]hiringrequestapimodels.VacantPositionView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacant-positions [get]
func (c *vacantPositionApiController) list(ctx *fiber.Ctx) error {
	resp, err := vacantpositionhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "vacant position list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
