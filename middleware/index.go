package middleware

import (
	"errors"
	"strings"

	"coworking_market/constants"
	"coworking_market/helper"
	"coworking_market/model"
	"coworking_market/repository"
	"coworking_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Protected accepts the access_token cookie, a Bearer header, or a token
// query param (browsers cannot set headers on websocket upgrades).
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claim, err := helper.ParseAccessToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("claim", claim)
		return c.Next()
	}
}

func CurrentUser(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := c.Locals("claim").(*model.TokenClaim)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no claim"))
		}

		user, err := users.FindByID(c.UserContext(), claim.UserId)
		if err != nil {
			return err
		}
		if user == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, errors.New("user not found"))
		}
		if !user.Active {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_ACTIVE, errors.New("user inactive"))
		}

		c.Locals("currentUser", user)
		return c.Next()
	}
}

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("requestId", id)
		return c.Next()
	}
}
