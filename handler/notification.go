package handler

import "github.com/gofiber/fiber/v2"

func (h *Handler) SellerNotifications(c *fiber.Ctx) error {
	res, err := h.Notifications.SellerList(c.UserContext(), currentUser(c))
	return send(c, res, err)
}

func (h *Handler) CheckSellerNotification(c *fiber.Ctx) error {
	res, err := h.Notifications.CheckInternal(c.UserContext(), currentUser(c), paramId(c, "id"))
	return send(c, res, err)
}

func (h *Handler) BuyerNotifications(c *fiber.Ctx) error {
	res, err := h.Notifications.BuyerList(c.UserContext(), currentUser(c))
	return send(c, res, err)
}

func (h *Handler) CheckBuyerNotification(c *fiber.Ctx) error {
	res, err := h.Notifications.CheckPush(c.UserContext(), currentUser(c), paramId(c, "id"))
	return send(c, res, err)
}
