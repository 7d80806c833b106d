package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"recruit-track-backend/db"
	authhandler "recruit-track-backend/lib/auth"
	"recruit-track-backend/middleware"
	"recruit-track-backend/models"
	apimodels "recruit-track-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("could not read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is not specified")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("path", ctx.Path()).
		WithField("method", ctx.Method()).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError maps handler errors to API statuses. Raw errors are logged
// only, the client gets hMsg or a well-known message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("record not found"))
	case errors.Is(err, authhandler.ErrInvalidCredentials):
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	case db.IsDuplicateKeyError(err):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError("record already exists"))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
