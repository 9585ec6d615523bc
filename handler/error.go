package handler

import (
	"errors"

	"coworking_market/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders any error that escapes a handler. Fiber errors keep
// their status, everything else is an internal failure.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}

		log.WithFields(logrus.Fields{
			"method":    c.Method(),
			"path":      c.Path(),
			"requestId": c.Locals("requestId"),
		}).WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": constants.ERROR_INTERNAL_ERROR})
	}
}
