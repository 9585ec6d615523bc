package handler

import (
	"errors"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListViewings(c *fiber.Ctx) error {
	ctx := c.UserContext()
	workspace, res, err := h.WorkSpaces.OwnedWorkSpace(ctx, currentUser(c), paramId(c, "id"))
	if res != nil || err != nil {
		return send(c, res, err)
	}
	res, err = h.Viewings.List(ctx, workspace)
	return send(c, res, err)
}

func (h *Handler) UpdateViewingStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputViewingStatus").(model.UpdateViewingStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	ctx := c.UserContext()
	seller := currentUser(c)
	workspace, res, err := h.WorkSpaces.OwnedWorkSpace(ctx, seller, paramId(c, "id"))
	if res != nil || err != nil {
		return send(c, res, err)
	}
	res, err = h.Viewings.UpdateStatus(ctx, seller, workspace, paramId(c, "viewingId"), input.Status)
	return send(c, res, err)
}

func (h *Handler) AddViewing(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAddViewing").(model.AddViewingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	ctx := c.UserContext()
	workspace, res, err := h.WorkSpaces.FindWorkSpace(ctx, paramId(c, "id"))
	if res != nil || err != nil {
		return send(c, res, err)
	}
	res, err = h.Viewings.Add(ctx, currentUser(c), workspace, input)
	return send(c, res, err)
}

func (h *Handler) CancelViewing(c *fiber.Ctx) error {
	res, err := h.Viewings.Cancel(c.UserContext(), currentUser(c), paramId(c, "id"))
	return send(c, res, err)
}

func (h *Handler) ViewingPass(c *fiber.Ctx) error {
	png, res, err := h.Viewings.Pass(c.UserContext(), currentUser(c), paramId(c, "id"))
	if res != nil || err != nil {
		return send(c, res, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
