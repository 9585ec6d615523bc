package router

import (
	"coworking_market/handler"
	"coworking_market/middleware"
	"coworking_market/repository"
	"coworking_market/validate"

	"github.com/casbin/casbin"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, users repository.UserRepository, enforcer *casbin.Enforcer, log *logrus.Logger) {
	app.Get("/health", handler.Health)

	api := app.Group("/api", middleware.RequestID(), logger.New())

	authenticated := []fiber.Handler{
		middleware.Protected(),
		middleware.CurrentUser(users),
		middleware.Authorize(enforcer, log),
	}
	protected := func(handlers ...fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, authenticated...), handlers...)
	}

	auth := api.Group("/auth")
	auth.Post("/register", validate.Register(), h.Register)
	auth.Post("/login", validate.Login(), h.Login)
	auth.Get("/me", middleware.Protected(), middleware.CurrentUser(users), h.Me)

	seller := api.Group("/seller")
	seller.Post("/location", protected(validate.CreateLocation(), h.CreateLocation)...)
	seller.Get("/locations", protected(h.SellerLocations)...)
	seller.Get("/location/:id", protected(validate.GetById("id"), h.ViewLocation)...)
	seller.Put("/location/:id", protected(validate.GetById("id"), validate.UpdateLocation(), h.UpdateLocation)...)
	seller.Delete("/location/:id", protected(validate.GetById("id"), h.DeleteLocation)...)
	seller.Post("/location/:id/workspace", protected(validate.GetById("id"), validate.AddWorkspace(), h.AddWorkspace)...)
	seller.Post("/location/:id/cover", protected(validate.GetById("id"), h.UploadCoverImage)...)
	seller.Get("/workspace/:id/viewings", protected(validate.GetById("id"), h.ListViewings)...)
	seller.Put("/workspace/:id/viewing/:viewingId/status", protected(validate.GetById("id"), validate.GetById("viewingId"), validate.UpdateViewingStatus(), h.UpdateViewingStatus)...)
	seller.Get("/notifications", protected(h.SellerNotifications)...)
	seller.Put("/notifications/:id/check", protected(validate.GetById("id"), h.CheckSellerNotification)...)
	seller.Post("/media/signature", protected(h.MediaSignature)...)

	buyer := api.Group("/buyer")
	buyer.Post("/workspace/:id/viewing", protected(validate.GetById("id"), validate.AddViewing(), h.AddViewing)...)
	buyer.Put("/viewing/:id/cancel", protected(validate.GetById("id"), h.CancelViewing)...)
	buyer.Get("/viewing/:id/pass", protected(validate.GetById("id"), h.ViewingPass)...)
	buyer.Get("/notifications", protected(h.BuyerNotifications)...)
	buyer.Put("/notifications/:id/check", protected(validate.GetById("id"), h.CheckBuyerNotification)...)

	ws := api.Group("/ws")
	ws.Get("/notifications", protected(handler.RequireUpgrade, websocket.New(h.NotificationFeed))...)
}
