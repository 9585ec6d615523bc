package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"coworking_market/constants"
	"coworking_market/events"
	"coworking_market/model"
	"coworking_market/notification"
	"coworking_market/validate"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type LocationsManager struct {
	Deps
	workspaces *WorkSpaceManager
}

func NewLocationsManager(deps Deps, workspaces *WorkSpaceManager) *LocationsManager {
	return &LocationsManager{Deps: deps, workspaces: workspaces}
}

type LocationView struct {
	ID              uint           `json:"id"`
	Name            string         `json:"name"`
	Address         string         `json:"address"`
	OptionalAddress string         `json:"optionalAddress"`
	Latitude        string         `json:"latitude"`
	Longitude       string         `json:"longitude"`
	Town            string         `json:"town"`
	Area            string         `json:"area"`
	Postcode        string         `json:"postcode"`
	Description     string         `json:"description"`
	WorkSpaceTypes  datatypes.JSON `json:"workSpaceTypes"`
	Nearby          datatypes.JSON `json:"nearby"`
	CoverImage      string         `json:"coverImage"`
}

type DeskRow struct {
	ID       uint    `json:"id"`
	Quantity int     `json:"quantity"`
	Type     *string `json:"type"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Bookings int64   `json:"bookings"`
	Viewings int64   `json:"viewing"`
}

type SpaceRow struct {
	ID       uint    `json:"id"`
	Quantity int     `json:"quantity"`
	Size     *int    `json:"size"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Bookings int64   `json:"bookings"`
	Viewings int64   `json:"viewing"`
}

type SellerLocationRow struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Desks          []DeskRow  `json:"desks"`
	MeetingRooms   []SpaceRow `json:"meetingRooms"`
	PrivateOffices []SpaceRow `json:"privateOffices"`
	Postcode       string     `json:"postcode"`
}

func locationNotFound(id uint) *Response {
	return badRequest(fmt.Sprintf(constants.LOCATION_NOT_FOUND, id))
}

func areaMissing() *Response {
	return fieldErrors([]model.FieldError{{Attribute: "area", Details: constants.AREA_DOES_NOT_EXIST}})
}

func jsonColumn(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// OwnedLocation loads a location and checks the seller owns it. A missing
// and a foreign location yield the same 400 response.
func (m *LocationsManager) OwnedLocation(ctx context.Context, seller *model.User, id uint) (*model.Location, *Response, error) {
	location, err := m.Store.Locations.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !ownsLocation(seller, location) {
		return nil, locationNotFound(id), nil
	}
	return location, nil, nil
}

func (m *LocationsManager) Create(ctx context.Context, seller *model.User, input model.CreateLocationInput) (*Response, error) {
	if errs := validate.Check(input); errs != nil {
		return fieldErrors(errs), nil
	}

	area, err := m.Store.Areas.FindBySlug(ctx, input.Area)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return areaMissing(), nil
	}

	nearby, err := jsonColumn(nonNil(input.Nearby))
	if err != nil {
		return nil, err
	}
	types, err := jsonColumn(nonNil(input.WorkSpaceTypes))
	if err != nil {
		return nil, err
	}

	location := model.Location{
		UserId:          seller.ID,
		AreaId:          &area.ID,
		Area:            area,
		Name:            input.Name,
		Address:         input.Address,
		OptionalAddress: input.OptionalAddress,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Nearby:          nearby,
		Town:            input.Town,
		Postcode:        input.Postcode,
		Description:     input.Description,
		WorkSpaceTypes:  types,
	}
	if err := m.Store.Locations.Create(ctx, &location); err != nil {
		return nil, err
	}

	err = m.Notifier.SendEmail(ctx, notification.Email{
		Event: constants.EVENT_LOCATION_ADDED,
		To:    seller.Email,
		Params: map[string]any{
			"location":   location,
			"seller":     seller,
			"adminLink":  m.Links.Admin(constants.ADMIN_LOCATION_EDIT, location.ID),
			"linkPortal": m.Links.Front(constants.FRONT_MAIN_PORTAL),
		},
	})
	if err != nil {
		return nil, err
	}

	m.publish(ctx, events.LOCATION_CREATED, map[string]any{"locationId": location.ID, "userId": seller.ID, "area": area.Slug})
	m.Log.WithFields(logrus.Fields{"locationId": location.ID, "userId": seller.ID}).Info("location created")

	return respond(http.StatusCreated, map[string]any{"id": location.ID}), nil
}

func (m *LocationsManager) Update(ctx context.Context, seller *model.User, id uint, input model.UpdateLocationInput) (*Response, error) {
	location, res, err := m.OwnedLocation(ctx, seller, id)
	if res != nil || err != nil {
		return res, err
	}

	if errs := validate.Check(input); errs != nil {
		return fieldErrors(errs), nil
	}

	if input.Area != nil && *input.Area != "" {
		area, err := m.Store.Areas.FindBySlug(ctx, *input.Area)
		if err != nil {
			return nil, err
		}
		if area == nil {
			return areaMissing(), nil
		}
		location.AreaId = &area.ID
		location.Area = area
	}

	if err := applyLocationUpdate(location, input); err != nil {
		return nil, err
	}
	if err := m.Store.Locations.Save(ctx, location); err != nil {
		return nil, err
	}

	return message(http.StatusOK, constants.LOCATION_UPDATED), nil
}

func applyLocationUpdate(location *model.Location, input model.UpdateLocationInput) error {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&location.Name, input.Name)
	set(&location.Address, input.Address)
	set(&location.OptionalAddress, input.OptionalAddress)
	set(&location.Latitude, input.Latitude)
	set(&location.Longitude, input.Longitude)
	set(&location.Town, input.Town)
	set(&location.Postcode, input.Postcode)
	set(&location.Description, input.Description)

	if input.Nearby != nil {
		nearby, err := jsonColumn(nonNil(*input.Nearby))
		if err != nil {
			return err
		}
		location.Nearby = nearby
	}
	if input.WorkSpaceTypes != nil {
		types, err := jsonColumn(nonNil(*input.WorkSpaceTypes))
		if err != nil {
			return err
		}
		location.WorkSpaceTypes = types
	}
	return nil
}

func (m *LocationsManager) Delete(ctx context.Context, seller *model.User, id uint) (*Response, error) {
	location, res, err := m.OwnedLocation(ctx, seller, id)
	if res != nil || err != nil {
		return res, err
	}

	err = m.Notifier.SendEmail(ctx, notification.Email{
		Event: constants.EVENT_LOCATION_DELETED,
		To:    seller.Email,
		Params: map[string]any{
			"location": location,
			"seller":   seller,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := m.Store.Locations.Delete(ctx, location); err != nil {
		return nil, err
	}

	m.publish(ctx, events.LOCATION_DELETED, map[string]any{"locationId": location.ID, "userId": seller.ID})
	m.Log.WithFields(logrus.Fields{"locationId": location.ID, "userId": seller.ID}).Info("location deleted")

	return respond(http.StatusNoContent, nil), nil
}

func (m *LocationsManager) View(ctx context.Context, seller *model.User, id uint) (*Response, error) {
	location, res, err := m.OwnedLocation(ctx, seller, id)
	if res != nil || err != nil {
		return res, err
	}

	area := ""
	if location.Area != nil {
		area = location.Area.Name
	}

	return respond(http.StatusOK, LocationView{
		ID:              location.ID,
		Name:            location.Name,
		Address:         location.Address,
		OptionalAddress: location.OptionalAddress,
		Latitude:        location.Latitude,
		Longitude:       location.Longitude,
		Town:            location.Town,
		Area:            area,
		Postcode:        location.Postcode,
		Description:     location.Description,
		WorkSpaceTypes:  orEmptyArray(location.WorkSpaceTypes),
		Nearby:          orEmptyArray(location.Nearby),
		CoverImage:      location.CoverImage,
	}), nil
}

// AddWorkspace gates on ownership, then delegates to the WorkSpaceManager.
func (m *LocationsManager) AddWorkspace(ctx context.Context, seller *model.User, id uint, input model.AddWorkspaceInput) (*Response, error) {
	location, res, err := m.OwnedLocation(ctx, seller, id)
	if res != nil || err != nil {
		return res, err
	}
	return m.workspaces.AddWorkspace(ctx, location, input)
}

func (m *LocationsManager) SetCoverImage(ctx context.Context, location *model.Location, url string) (*Response, error) {
	location.CoverImage = url
	if err := m.Store.Locations.Save(ctx, location); err != nil {
		return nil, err
	}
	return respond(http.StatusOK, map[string]any{
		"message":    constants.COVER_IMAGE_UPDATED,
		"coverImage": url,
	}), nil
}

func (m *LocationsManager) SellerLocations(ctx context.Context, seller *model.User) (*Response, error) {
	locations, err := m.Store.Locations.FindByUser(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return respond(http.StatusOK, map[string]any{"locations": []SellerLocationRow{}}), nil
	}

	var ids []uint
	for _, l := range locations {
		for _, w := range l.WorkSpaces {
			ids = append(ids, w.ID)
		}
	}
	counts, err := m.Store.WorkSpaces.Counts(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]SellerLocationRow, 0, len(locations))
	for _, l := range locations {
		row := SellerLocationRow{
			ID:             l.ID,
			Name:           l.Name,
			Address:        l.Address,
			Desks:          []DeskRow{},
			MeetingRooms:   []SpaceRow{},
			PrivateOffices: []SpaceRow{},
			Postcode:       l.Postcode,
		}

		for _, w := range l.WorkSpaces {
			c := counts[w.ID]
			switch w.Type {
			case constants.WORKSPACE_PRIVATE_OFFICE:
				row.PrivateOffices = append(row.PrivateOffices, spaceRow(w, c))
			case constants.WORKSPACE_MEETING_ROOM:
				row.MeetingRooms = append(row.MeetingRooms, spaceRow(w, c))
			case constants.WORKSPACE_DESK:
				row.Desks = append(row.Desks, DeskRow{
					ID:       w.ID,
					Quantity: w.Quantity,
					Type:     w.DeskType,
					Price:    w.Price,
					Status:   w.Status,
					Bookings: c.Bookings,
					Viewings: c.Viewings,
				})
			default:
				m.Log.WithFields(logrus.Fields{"workspaceId": w.ID, "type": w.Type}).Warn("workspace with unknown type skipped")
			}
		}
		rows = append(rows, row)
	}

	return respond(http.StatusOK, map[string]any{"locations": rows}), nil
}

func spaceRow(w model.WorkSpace, c model.WorkspaceCounts) SpaceRow {
	return SpaceRow{
		ID:       w.ID,
		Quantity: w.Quantity,
		Size:     w.Size,
		Price:    w.Price,
		Status:   w.Status,
		Bookings: c.Bookings,
		Viewings: c.Viewings,
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func orEmptyArray(in datatypes.JSON) datatypes.JSON {
	if len(in) == 0 {
		return datatypes.JSON("[]")
	}
	return in
}
