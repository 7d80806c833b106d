package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"recruit-track-backend/config"
	apiv1 "recruit-track-backend/controllers/v1"
	"recruit-track-backend/fiberlog"
	"recruit-track-backend/initializers"
	"recruit-track-backend/lib/ws"
	"recruit-track-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowOrigins:     config.Conf.App.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, PUT",
		AllowCredentials: true,
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//protected resources
	protected := fiber.New()
	apiV1.Mount("/", protected)
	protected.Use(middleware.AuthorizationRequired())
	protected.Use(middleware.RbacMiddleware())
	apiv1.InitUserApiRouters(protected)
	apiv1.InitHiringRequestApiRouters(protected)
	apiv1.InitCandidateApiRouters(protected)
	apiv1.InitInterviewApiRouters(protected)
	apiv1.InitNotificationApiRouters(protected)
	apiv1.InitVacantPositionApiRouters(protected)

	//websocket pushes
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
