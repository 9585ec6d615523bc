package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) MediaSignature(c *fiber.Ctx) error {
	if h.Media == nil {
		return errors.New("media uploads are not configured")
	}
	sig, err := h.Media.Sign("locations", time.Now())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(sig)
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
