package validate

import (
	"strings"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/utils"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok, err := decode[model.RegisterInput](c)
		if !ok {
			return err
		}
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))

		if errs := Check(input); errs != nil {
			return utils.ValidationErrorResponse(c, errs)
		}

		c.Locals("inputRegister", *input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok, err := decode[model.LoginInput](c)
		if !ok {
			return err
		}
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))

		if input.Email == "" || input.Password == "" {
			return utils.MessageResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT)
		}

		c.Locals("inputLogin", *input)
		return c.Next()
	}
}
