package validate

import (
	"coworking_market/model"

	"github.com/gofiber/fiber/v2"
)

func AddViewing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok, err := decode[model.AddViewingInput](c)
		if !ok {
			return err
		}

		c.Locals("inputAddViewing", *input)
		return c.Next()
	}
}

func UpdateViewingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok, err := decode[model.UpdateViewingStatusInput](c)
		if !ok {
			return err
		}

		c.Locals("inputViewingStatus", *input)
		return c.Next()
	}
}
