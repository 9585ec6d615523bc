package utils

import (
	"coworking_market/model"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errs []model.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": errs,
	})
}

// JSONResponse writes data as is. A 204 drops the body.
func JSONResponse(c *fiber.Ctx, status int, data any) error {
	if status == fiber.StatusNoContent || data == nil {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(data)
}

func Ptr[T any](v T) *T {
	return &v
}
