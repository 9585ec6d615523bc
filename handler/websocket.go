package handler

import (
	"context"

	"coworking_market/model"
	"coworking_market/notification"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// NotificationFeed relays the user's Redis notification channel to the socket.
func (h *Handler) NotificationFeed(c *websocket.Conn) {
	defer c.Close()

	user, _ := c.Locals("currentUser").(*model.User)
	if user == nil || h.Redis == nil {
		_ = c.WriteJSON(fiber.Map{"message": "live notifications are unavailable"})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := h.Redis.Subscribe(ctx, notification.Channel(user.ID))
	defer pubsub.Close()

	// the client never sends anything, reads only detect a closed socket
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.Log.WithField("userId", user.ID).Debug("notification feed opened")
	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
