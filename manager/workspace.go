package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/validate"

	"github.com/sirupsen/logrus"
)

type WorkSpaceManager struct {
	Deps
}

func NewWorkSpaceManager(deps Deps) *WorkSpaceManager {
	return &WorkSpaceManager{Deps: deps}
}

func workspaceNotFound(id uint) *Response {
	return badRequest(fmt.Sprintf(constants.WORKSPACE_NOT_FOUND, id))
}

// OwnedWorkSpace loads a workspace with its location and checks the seller
// owns that location.
func (m *WorkSpaceManager) OwnedWorkSpace(ctx context.Context, seller *model.User, id uint) (*model.WorkSpace, *Response, error) {
	workspace, err := m.Store.WorkSpaces.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !ownsWorkSpace(seller, workspace) {
		return nil, workspaceNotFound(id), nil
	}
	return workspace, nil, nil
}

func (m *WorkSpaceManager) AddWorkspace(ctx context.Context, location *model.Location, input model.AddWorkspaceInput) (*Response, error) {
	if errs := validate.Check(input); errs != nil {
		return fieldErrors(errs), nil
	}

	workspace := model.WorkSpace{
		LocationId:        location.ID,
		Type:              input.Type,
		Quantity:          input.Quantity,
		Price:             input.Price,
		Size:              input.Size,
		Capacity:          input.Capacity,
		MinContractLength: input.MinContractLength,
		Description:       input.Description,
		Status:            constants.WORKSPACE_ACTIVE,
	}
	if input.Type == constants.WORKSPACE_DESK {
		deskType := input.DeskType
		workspace.DeskType = &deskType
		if deskType == constants.DESK_HOURLY_HOT {
			workspace.OpensFrom = input.OpensFrom
			workspace.ClosesAt = input.ClosesAt
		}
	}
	if input.AvailableFrom != nil {
		from := time.Unix(*input.AvailableFrom, 0)
		workspace.AvailableFrom = &from
	}
	facilities, err := jsonColumn(nonNil(input.Facilities))
	if err != nil {
		return nil, err
	}
	workspace.Facilities = facilities

	if err := m.Store.WorkSpaces.Create(ctx, &workspace); err != nil {
		return nil, err
	}

	if err := m.rememberType(ctx, location, input.Type); err != nil {
		return nil, err
	}

	m.Log.WithFields(logrus.Fields{"workspaceId": workspace.ID, "locationId": location.ID, "type": workspace.Type}).Info("workspace added")
	return respond(http.StatusCreated, map[string]any{"id": workspace.ID}), nil
}

// rememberType appends the workspace type to the location's type list.
func (m *WorkSpaceManager) rememberType(ctx context.Context, location *model.Location, kind string) error {
	var types []string
	if len(location.WorkSpaceTypes) > 0 {
		if err := json.Unmarshal(location.WorkSpaceTypes, &types); err != nil {
			return err
		}
	}
	for _, t := range types {
		if t == kind {
			return nil
		}
	}

	encoded, err := jsonColumn(append(types, kind))
	if err != nil {
		return err
	}
	location.WorkSpaceTypes = encoded
	return m.Store.Locations.Save(ctx, location)
}

// FindWorkSpace loads a workspace any buyer may request a viewing for.
func (m *WorkSpaceManager) FindWorkSpace(ctx context.Context, id uint) (*model.WorkSpace, *Response, error) {
	workspace, err := m.Store.WorkSpaces.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if workspace == nil || workspace.Location == nil {
		return nil, workspaceNotFound(id), nil
	}
	return workspace, nil, nil
}
