package manager

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"coworking_market/constants"
	"coworking_market/events"
	"coworking_market/helper"
	"coworking_market/model"
	"coworking_market/notification"
	"coworking_market/repository"

	"github.com/sirupsen/logrus"
)

type fixture struct {
	ctx        context.Context
	store      *repository.Store
	notifier   *notification.Recorder
	events     *events.Memory
	now        time.Time
	locations  *LocationsManager
	workspaces *WorkSpaceManager
	viewings   *ViewingManager
	notes      *NotificationsManager
	seller     *model.User
	buyer      *model.User
	area       *model.Area
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		ctx:      context.Background(),
		store:    repository.NewMemoryStore(),
		notifier: notification.NewRecorder(),
		events:   &events.Memory{},
		now:      time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
	}
	deps := Deps{
		Store:    f.store,
		Notifier: f.notifier,
		Events:   f.events,
		Links:    helper.NewLinkGenerator("https://front.test/", "https://admin.test"),
		Log:      log,
		Now:      func() time.Time { return f.now },
	}
	f.workspaces = NewWorkSpaceManager(deps)
	f.locations = NewLocationsManager(deps, f.workspaces)
	f.viewings = NewViewingManager(deps, NewUserStatusChecker(f.store.Users))
	f.notes = NewNotificationsManager(deps)

	f.seller = f.user(t, "seller@test.local", constants.ROLE_SELLER)
	f.buyer = f.user(t, "buyer@test.local", constants.ROLE_BUYER)
	f.area = &model.Area{Name: "Shoreditch", Slug: "shoreditch"}
	if err := f.store.Areas.Create(f.ctx, f.area); err != nil {
		t.Fatalf("create area: %v", err)
	}
	return f
}

func (f *fixture) user(t *testing.T, email, role string) *model.User {
	t.Helper()
	u := &model.User{Email: email, FirstName: "Test", LastName: role, Role: role, Status: constants.USER_STATUS_REGISTERED, Active: true}
	if err := f.store.Users.Create(f.ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func validLocationInput() model.CreateLocationInput {
	return model.CreateLocationInput{
		Name:        "The Tea Building",
		Address:     "56 Shoreditch High St",
		Latitude:    "51.5246",
		Longitude:   "-0.0776",
		Town:        "London",
		Postcode:    "E1 6JJ",
		Description: "Open plan floors",
		Area:        "shoreditch",
		Nearby: []model.NearbyPlace{
			{Type: "station", Name: "Shoreditch High Street", Distance: "0.2 miles"},
		},
	}
}

// createLocation creates a location for the fixture seller and returns its id.
func (f *fixture) createLocation(t *testing.T) uint {
	t.Helper()
	res, err := f.locations.Create(f.ctx, f.seller, validLocationInput())
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	if res.Status != 201 {
		t.Fatalf("create location status = %d, body %v", res.Status, res.Data)
	}
	return res.Data.(map[string]any)["id"].(uint)
}

func (f *fixture) addWorkspace(t *testing.T, locationID uint, input model.AddWorkspaceInput) *model.WorkSpace {
	t.Helper()
	res, err := f.locations.AddWorkspace(f.ctx, f.seller, locationID, input)
	if err != nil {
		t.Fatalf("add workspace: %v", err)
	}
	if res.Status != 201 {
		t.Fatalf("add workspace status = %d, body %v", res.Status, res.Data)
	}
	ws, err := f.store.WorkSpaces.FindByID(f.ctx, res.Data.(map[string]any)["id"].(uint))
	if err != nil || ws == nil {
		t.Fatalf("find workspace: %v", err)
	}
	return ws
}

func meetingRoomInput() model.AddWorkspaceInput {
	size, capacity := 20, 8
	return model.AddWorkspaceInput{
		Type:        constants.WORKSPACE_MEETING_ROOM,
		Quantity:    1,
		Price:       40,
		Size:        &size,
		Capacity:    &capacity,
		Description: "Board room",
	}
}

func messageOf(t *testing.T, res *Response) string {
	t.Helper()
	m, ok := res.Data.(map[string]any)
	if !ok {
		t.Fatalf("response data is %T, want map", res.Data)
	}
	msg, _ := m["message"].(string)
	return msg
}

func errorsOf(t *testing.T, res *Response) []model.FieldError {
	t.Helper()
	m, ok := res.Data.(map[string]any)
	if !ok {
		t.Fatalf("response data is %T, want map", res.Data)
	}
	errs, ok := m["errors"].([]model.FieldError)
	if !ok {
		t.Fatalf("response has no errors: %v", res.Data)
	}
	return errs
}

func hasAttribute(errs []model.FieldError, attribute string) bool {
	for _, e := range errs {
		if e.Attribute == attribute {
			return true
		}
	}
	return false
}

func asJSON(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}
