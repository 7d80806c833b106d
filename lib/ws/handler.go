package ws

import (
	wsclient "recruit-track-backend/lib/ws/client"
	connectionhub "recruit-track-backend/lib/ws/hub/connection-hub"
	"recruit-track-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		userID := middleware.GetUserID(ctx)
		ctx.Locals("userID", userID)
		return ctx.Next()
	})
	app.Get("/", websocket.New(pushHandler))
}

// @Summary Notification push stream
// @Tags Websocket
// @Description Pushes in-app notifications to the connected client, replaying unread ones on connect
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func pushHandler(c *websocket.Conn) {
	userID := c.Locals("userID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID)
	}()
	client.Dispatch()
}
