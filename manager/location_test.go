package manager

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"coworking_market/constants"
	"coworking_market/events"
	"coworking_market/model"
	"coworking_market/utils"
)

func TestCreateLocation(t *testing.T) {
	f := newFixture(t)

	id := f.createLocation(t)

	location, err := f.store.Locations.FindByID(f.ctx, id)
	if err != nil || location == nil {
		t.Fatalf("location %d not stored: %v", id, err)
	}
	if location.UserId != f.seller.ID {
		t.Fatalf("owner = %d, want %d", location.UserId, f.seller.ID)
	}
	if location.Area == nil || location.Area.Slug != "shoreditch" {
		t.Fatalf("area not resolved: %+v", location.Area)
	}

	if got := f.notifier.Events(); len(got) != 1 || got[0] != constants.EVENT_LOCATION_ADDED {
		t.Fatalf("emails = %v, want [%s]", got, constants.EVENT_LOCATION_ADDED)
	}
	params := f.notifier.Emails[0].Params
	if want := "https://admin.test/admin/app/location/" + itoa(id) + "/edit"; params["adminLink"] != want {
		t.Fatalf("adminLink = %v, want %s", params["adminLink"], want)
	}
	if params["linkPortal"] != "https://front.test/" {
		t.Fatalf("linkPortal = %v", params["linkPortal"])
	}
	if f.notifier.Emails[0].To != f.seller.Email {
		t.Fatalf("email sent to %s", f.notifier.Emails[0].To)
	}
	if names := f.events.Names(); len(names) != 1 || names[0] != events.LOCATION_CREATED {
		t.Fatalf("events = %v", names)
	}
}

func TestCreateLocationMissingFields(t *testing.T) {
	f := newFixture(t)

	input := validLocationInput()
	input.Name = ""
	input.Postcode = "THIS-IS-TOO-LONG"

	res, err := f.locations.Create(f.ctx, f.seller, input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != 400 {
		t.Fatalf("status = %d, want 400", res.Status)
	}
	errs := errorsOf(t, res)
	if !hasAttribute(errs, "name") || !hasAttribute(errs, "postcode") {
		t.Fatalf("errors = %+v, want name and postcode", errs)
	}
	if len(f.notifier.Emails) != 0 {
		t.Fatalf("no email expected, got %v", f.notifier.Events())
	}
}

func TestCreateLocationUnknownArea(t *testing.T) {
	f := newFixture(t)

	input := validLocationInput()
	input.Area = "atlantis"

	res, err := f.locations.Create(f.ctx, f.seller, input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	errs := errorsOf(t, res)
	if res.Status != 400 || len(errs) != 1 || errs[0].Attribute != "area" || errs[0].Details != "This value do not exist" {
		t.Fatalf("got %d %+v", res.Status, errs)
	}
	if list, _ := f.store.Locations.FindByUser(f.ctx, f.seller.ID); len(list) != 0 {
		t.Fatalf("location persisted despite unknown area")
	}
}

func TestCreateLocationEmailFailureKeepsLocation(t *testing.T) {
	f := newFixture(t)
	f.notifier.EmailErr = errors.New("smtp down")

	_, err := f.locations.Create(f.ctx, f.seller, validLocationInput())
	if err == nil {
		t.Fatalf("expected the delivery error to propagate")
	}
	if list, _ := f.store.Locations.FindByUser(f.ctx, f.seller.ID); len(list) != 1 {
		t.Fatalf("location should stay persisted, found %d", len(list))
	}
}

func TestViewLocation(t *testing.T) {
	f := newFixture(t)
	id := f.createLocation(t)

	res, err := f.locations.View(f.ctx, f.seller, id)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if res.Status != 200 {
		t.Fatalf("status = %d", res.Status)
	}
	body := asJSON(t, res.Data)
	input := validLocationInput()
	if body["name"] != input.Name || body["address"] != input.Address || body["postcode"] != input.Postcode {
		t.Fatalf("projection mismatch: %v", body)
	}
	if body["area"] != "Shoreditch" {
		t.Fatalf("area = %v, want area name", body["area"])
	}
	if types, ok := body["workSpaceTypes"].([]any); !ok || len(types) != 0 {
		t.Fatalf("workSpaceTypes = %v, want []", body["workSpaceTypes"])
	}
}

func TestForeignLocationLooksMissing(t *testing.T) {
	f := newFixture(t)
	id := f.createLocation(t)
	other := f.user(t, "other@test.local", constants.ROLE_SELLER)

	name := "Hijacked"
	foreign, err := f.locations.Update(f.ctx, other, id, model.UpdateLocationInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	missing, err := f.locations.Update(f.ctx, other, id+100, model.UpdateLocationInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if foreign.Status != 400 || missing.Status != 400 {
		t.Fatalf("statuses = %d/%d, want 400", foreign.Status, missing.Status)
	}
	if !strings.Contains(messageOf(t, foreign), "was not found") {
		t.Fatalf("message = %q", messageOf(t, foreign))
	}

	for _, op := range []func() (*Response, error){
		func() (*Response, error) { return f.locations.View(f.ctx, other, id) },
		func() (*Response, error) { return f.locations.Delete(f.ctx, other, id) },
		func() (*Response, error) { return f.locations.AddWorkspace(f.ctx, other, id, meetingRoomInput()) },
	} {
		res, err := op()
		if err != nil || res.Status != 400 {
			t.Fatalf("foreign access should be 400, got %v %v", res, err)
		}
	}

	location, _ := f.store.Locations.FindByID(f.ctx, id)
	if location.Name == name {
		t.Fatalf("foreign update was applied")
	}
}

func TestUpdateLocationPartial(t *testing.T) {
	f := newFixture(t)
	id := f.createLocation(t)
	f.store.Areas.Create(f.ctx, &model.Area{Name: "Soho", Slug: "soho"})

	town, area := "Westminster", "soho"
	res, err := f.locations.Update(f.ctx, f.seller, id, model.UpdateLocationInput{Town: &town, Area: &area})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Status != 200 || messageOf(t, res) != constants.LOCATION_UPDATED {
		t.Fatalf("got %d %v", res.Status, res.Data)
	}

	location, _ := f.store.Locations.FindByID(f.ctx, id)
	if location.Town != town || location.Area == nil || location.Area.Slug != "soho" {
		t.Fatalf("update not applied: town=%s area=%+v", location.Town, location.Area)
	}
	if location.Name != validLocationInput().Name {
		t.Fatalf("untouched field changed: %s", location.Name)
	}
	if len(f.notifier.Emails) != 1 {
		t.Fatalf("update must not notify, emails = %v", f.notifier.Events())
	}
}

func TestUpdateLocationValidatesSuppliedFieldsOnly(t *testing.T) {
	f := newFixture(t)
	id := f.createLocation(t)

	postcode := "WAY-TOO-LONG-POSTCODE"
	res, err := f.locations.Update(f.ctx, f.seller, id, model.UpdateLocationInput{Postcode: &postcode})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	errs := errorsOf(t, res)
	if len(errs) != 1 || errs[0].Attribute != "postcode" {
		t.Fatalf("errors = %+v, want only postcode", errs)
	}

	unknown := "atlantis"
	res, _ = f.locations.Update(f.ctx, f.seller, id, model.UpdateLocationInput{Area: &unknown})
	if errs := errorsOf(t, res); errs[0].Attribute != "area" {
		t.Fatalf("errors = %+v, want area", errs)
	}

	empty := ""
	res, _ = f.locations.Update(f.ctx, f.seller, id, model.UpdateLocationInput{Area: &empty})
	if res.Status != 200 {
		t.Fatalf("empty area should be ignored, got %d %v", res.Status, res.Data)
	}
}

func TestDeleteLocation(t *testing.T) {
	f := newFixture(t)
	id := f.createLocation(t)
	f.addWorkspace(t, id, meetingRoomInput())
	f.notifier.Reset()

	res, err := f.locations.Delete(f.ctx, f.seller, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.Status != 204 {
		t.Fatalf("status = %d", res.Status)
	}
	if got := f.notifier.Events(); len(got) != 1 || got[0] != constants.EVENT_LOCATION_DELETED {
		t.Fatalf("emails = %v", got)
	}
	if l, _ := f.store.Locations.FindByID(f.ctx, id); l != nil {
		t.Fatalf("location still present")
	}

	again, _ := f.locations.Delete(f.ctx, f.seller, id)
	if again.Status != 400 {
		t.Fatalf("second delete = %d, want 400", again.Status)
	}
}

func TestSellerLocationsPartitionsWorkspaces(t *testing.T) {
	f := newFixture(t)

	empty, err := f.locations.SellerLocations(f.ctx, f.seller)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if rows := asJSON(t, empty.Data)["locations"].([]any); len(rows) != 0 {
		t.Fatalf("expected no locations, got %v", rows)
	}

	id := f.createLocation(t)
	f.addWorkspace(t, id, meetingRoomInput())
	desk := f.addWorkspace(t, id, model.AddWorkspaceInput{
		Type:              constants.WORKSPACE_DESK,
		DeskType:          constants.DESK_MONTHLY_FIXED,
		Quantity:          5,
		Price:             300,
		MinContractLength: intPtr(3),
		Description:       "Fixed desks",
	})
	f.store.Bookings.Create(f.ctx, &model.Booking{WorkSpaceId: desk.ID, UserId: f.buyer.ID})
	f.store.Viewings.Create(f.ctx, &model.Viewing{WorkSpaceId: desk.ID, UserId: f.buyer.ID, StartTime: f.now, Status: constants.VIEWING_PENDING})
	f.store.Viewings.Create(f.ctx, &model.Viewing{WorkSpaceId: desk.ID, UserId: f.buyer.ID, StartTime: f.now, Status: constants.VIEWING_PENDING})
	// a row with a type no bucket knows about
	f.store.WorkSpaces.Create(f.ctx, &model.WorkSpace{LocationId: id, Type: "phone-booth", Quantity: 1, Price: 1})

	res, err := f.locations.SellerLocations(f.ctx, f.seller)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	rows := asJSON(t, res.Data)["locations"].([]any)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0].(map[string]any)
	desks := row["desks"].([]any)
	rooms := row["meetingRooms"].([]any)
	offices := row["privateOffices"].([]any)
	if len(desks) != 1 || len(rooms) != 1 || len(offices) != 0 {
		t.Fatalf("buckets = %d/%d/%d, want 1/1/0", len(desks), len(rooms), len(offices))
	}
	d := desks[0].(map[string]any)
	if d["type"] != constants.DESK_MONTHLY_FIXED || d["bookings"] != float64(1) || d["viewing"] != float64(2) {
		t.Fatalf("desk row = %v", d)
	}
	if _, ok := rooms[0].(map[string]any)["size"]; !ok {
		t.Fatalf("meeting room row has no size: %v", rooms[0])
	}
}

func TestAddWorkspaceTypeRules(t *testing.T) {
	available := int64(1772467200)
	base := func(kind, deskType string) model.AddWorkspaceInput {
		return model.AddWorkspaceInput{Type: kind, DeskType: deskType, Quantity: 1, Price: 10, Description: "Space"}
	}
	withOffice := func(in model.AddWorkspaceInput) model.AddWorkspaceInput {
		in.Size, in.Capacity, in.MinContractLength, in.AvailableFrom = intPtr(30), intPtr(4), intPtr(6), &available
		return in
	}

	cases := []struct {
		name  string
		input func() model.AddWorkspaceInput
		want  []string
	}{
		{"desk without desk type", func() model.AddWorkspaceInput {
			return base(constants.WORKSPACE_DESK, "")
		}, []string{"deskType"}},
		{"hourly desk without hours", func() model.AddWorkspaceInput {
			return base(constants.WORKSPACE_DESK, constants.DESK_HOURLY_HOT)
		}, []string{"opensFrom", "closesAt"}},
		{"monthly hot desk without contract", func() model.AddWorkspaceInput {
			return base(constants.WORKSPACE_DESK, constants.DESK_MONTHLY_HOT)
		}, []string{"minContractLength"}},
		{"monthly fixed desk without contract", func() model.AddWorkspaceInput {
			return base(constants.WORKSPACE_DESK, constants.DESK_MONTHLY_FIXED)
		}, []string{"minContractLength"}},
		{"office without contract", func() model.AddWorkspaceInput {
			in := withOffice(base(constants.WORKSPACE_PRIVATE_OFFICE, ""))
			in.MinContractLength = nil
			return in
		}, []string{"minContractLength"}},
		{"office without size and capacity", func() model.AddWorkspaceInput {
			in := withOffice(base(constants.WORKSPACE_PRIVATE_OFFICE, ""))
			in.Size, in.Capacity = nil, nil
			return in
		}, []string{"size", "capacity"}},
		{"office without available from", func() model.AddWorkspaceInput {
			in := withOffice(base(constants.WORKSPACE_PRIVATE_OFFICE, ""))
			in.AvailableFrom = nil
			return in
		}, []string{"availableFrom"}},
		{"meeting room without size and capacity", func() model.AddWorkspaceInput {
			return base(constants.WORKSPACE_MEETING_ROOM, "")
		}, []string{"size", "capacity"}},
	}

	f := newFixture(t)
	id := f.createLocation(t)
	for _, tc := range cases {
		res, err := f.locations.AddWorkspace(f.ctx, f.seller, id, tc.input())
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if res.Status != 400 {
			t.Fatalf("%s: status = %d, want 400", tc.name, res.Status)
		}
		errs := errorsOf(t, res)
		if len(errs) != len(tc.want) {
			t.Fatalf("%s: errors = %+v, want %v", tc.name, errs, tc.want)
		}
		for _, attr := range tc.want {
			if !hasAttribute(errs, attr) {
				t.Fatalf("%s: missing %s in %+v", tc.name, attr, errs)
			}
		}
	}
	if list, _ := f.store.Locations.FindByUser(f.ctx, f.seller.ID); len(list[0].WorkSpaces) != 0 {
		t.Fatalf("rejected workspaces persisted: %d", len(list[0].WorkSpaces))
	}

	hourly := base(constants.WORKSPACE_DESK, constants.DESK_HOURLY_HOT)
	hourly.OpensFrom, hourly.ClosesAt = utils.Ptr("08:00"), utils.Ptr("18:00")
	f.addWorkspace(t, id, hourly)
	f.addWorkspace(t, id, withOffice(base(constants.WORKSPACE_PRIVATE_OFFICE, "")))
}

func intPtr(v int) *int { return &v }

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
