package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateLocation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateLocation").(model.CreateLocationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	res, err := h.Locations.Create(c.UserContext(), currentUser(c), input)
	return send(c, res, err)
}

func (h *Handler) UpdateLocation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateLocation").(model.UpdateLocationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	res, err := h.Locations.Update(c.UserContext(), currentUser(c), paramId(c, "id"), input)
	return send(c, res, err)
}

func (h *Handler) DeleteLocation(c *fiber.Ctx) error {
	res, err := h.Locations.Delete(c.UserContext(), currentUser(c), paramId(c, "id"))
	return send(c, res, err)
}

func (h *Handler) ViewLocation(c *fiber.Ctx) error {
	res, err := h.Locations.View(c.UserContext(), currentUser(c), paramId(c, "id"))
	return send(c, res, err)
}

func (h *Handler) SellerLocations(c *fiber.Ctx) error {
	res, err := h.Locations.SellerLocations(c.UserContext(), currentUser(c))
	return send(c, res, err)
}

func (h *Handler) AddWorkspace(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAddWorkspace").(model.AddWorkspaceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	res, err := h.Locations.AddWorkspace(c.UserContext(), currentUser(c), paramId(c, "id"), input)
	return send(c, res, err)
}

var allowedImageExt = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

func (h *Handler) UploadCoverImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	location, res, err := h.Locations.OwnedLocation(ctx, currentUser(c), paramId(c, "id"))
	if res != nil || err != nil {
		return send(c, res, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.MessageResponse(c, fiber.StatusBadRequest, constants.REQUESTED_DATA_IS_EMPTY)
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(file.Filename))] {
		return utils.MessageResponse(c, fiber.StatusBadRequest, constants.INVALID_IMAGE_FORMAT)
	}
	if h.Media == nil {
		return errors.New("media uploads are not configured")
	}

	f, err := file.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := h.Media.UploadImage(ctx, f, "locations/covers", fmt.Sprintf("location_%d_cover_%d", location.ID, time.Now().Unix()))
	if err != nil {
		return err
	}

	previous := location.CoverImage
	res, err = h.Locations.SetCoverImage(ctx, location, url)
	if err == nil && previous != "" && previous != url {
		if err := h.Media.Destroy(ctx, previous); err != nil {
			h.Log.WithError(err).WithField("locationId", location.ID).Warn("old cover image not removed")
		}
	}
	return send(c, res, err)
}
