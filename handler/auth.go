package handler

import (
	"errors"
	"time"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	res, err := h.Auth.Register(c.UserContext(), input)
	return send(c, res, err)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	res, tokens, err := h.Auth.Login(c.UserContext(), input)
	if err != nil {
		return err
	}
	if tokens != nil {
		c.Cookie(&fiber.Cookie{
			Name:     "access_token",
			Value:    tokens.AccessToken,
			Expires:  time.Now().Add(60 * time.Minute),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	return send(c, res, nil)
}

func (h *Handler) Me(c *fiber.Ctx) error {
	return send(c, h.Auth.Me(currentUser(c)), nil)
}
