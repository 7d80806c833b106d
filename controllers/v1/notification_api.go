package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruit-track-backend/controllers"
	notificationhandler "recruit-track-backend/lib/notification"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	notificationapimodels "recruit-track-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("me", controller.unreadCount)
		router.Put("read-all", controller.markAllRead)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Create notification
// @Tags Notifications
// @Description Create notification with websocket push and optional email fan-out
// @Param	body	body	notificationapimodels.NotificationCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [post]
func (c *notificationApiController) create(ctx *fiber.Ctx) error {
	var payload notificationapimodels.NotificationCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := notificationhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "notification creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary My notifications
// @Tags Notifications
// @Description Notifications of the current user, newest first
// @Param   page	query	int	false	"page number"
// @Param   limit	query	int	false	"rows per page"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	resp, err := notificationhandler.Instance.ListMine(userID, page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "notification list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Unread counter
// @Tags Notifications
// @Description Unread notification count of the current user
// @Success 200 {object} apimodels.Response{data=notificationapimodels.UnreadCount}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/me [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	count, err := notificationhandler.Instance.UnreadCount(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unread count failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notificationapimodels.UnreadCount{Unread: count}))
}

// @Summary Mark notification as read
// @Tags Notifications
// @Description Mark one notification of the current user as read
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err = notificationhandler.Instance.MarkRead(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "notification read mark failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark all notifications as read
// @Tags Notifications
// @Description Mark all notifications of the current user as read
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/read-all [put]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	err := notificationhandler.Instance.MarkAllRead(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "notification read mark failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
