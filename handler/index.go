package handler

import (
	"context"
	"io"
	"time"

	"coworking_market/helper"
	"coworking_market/manager"
	"coworking_market/model"
	"coworking_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type MediaUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
	Sign(folder string, now time.Time) (*helper.UploadSignature, error)
	Destroy(ctx context.Context, assetURL string) error
}

type Handler struct {
	Locations     *manager.LocationsManager
	WorkSpaces    *manager.WorkSpaceManager
	Viewings      *manager.ViewingManager
	Auth          *manager.AuthManager
	Notifications *manager.NotificationsManager
	Media         MediaUploader
	Redis         *redis.Client
	Log           *logrus.Logger
}

// send renders a manager outcome. Errors go to the app ErrorHandler.
func send(c *fiber.Ctx, res *manager.Response, err error) error {
	if err != nil {
		return err
	}
	return utils.JSONResponse(c, res.Status, res.Data)
}

func currentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals("currentUser").(*model.User)
	return user
}

func paramId(c *fiber.Ctx, key string) uint {
	id, _ := c.Locals(key).(uint)
	return id
}
