package validate

import (
	"coworking_market/model"

	"github.com/gofiber/fiber/v2"
)

// CreateLocation only decodes. Field rules run in the locations manager.
func CreateLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok, err := decode[model.CreateLocationInput](c)
		if !ok {
			return err
		}

		c.Locals("inputCreateLocation", *input)
		return c.Next()
	}
}

// UpdateLocation only decodes. Field rules run after the ownership lookup.
func UpdateLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok, err := decode[model.UpdateLocationInput](c)
		if !ok {
			return err
		}

		c.Locals("inputUpdateLocation", *input)
		return c.Next()
	}
}

func AddWorkspace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok, err := decode[model.AddWorkspaceInput](c)
		if !ok {
			return err
		}

		c.Locals("inputAddWorkspace", *input)
		return c.Next()
	}
}
