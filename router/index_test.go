package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coworking_market/events"
	"coworking_market/handler"
	"coworking_market/helper"
	"coworking_market/manager"
	"coworking_market/middleware"
	"coworking_market/model"
	"coworking_market/notification"
	"coworking_market/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type testApp struct {
	t        *testing.T
	app      *fiber.App
	store    *repository.Store
	notifier *notification.Recorder
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	helper.JwtSecret = []byte("router-test-secret")

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := repository.NewMemoryStore()
	notifier := notification.NewRecorder()
	deps := manager.Deps{
		Store:    store,
		Notifier: notifier,
		Events:   &events.Memory{},
		Links:    helper.NewLinkGenerator("https://front.test", "https://admin.test"),
		Log:      log,
		Now:      time.Now,
	}
	workspaces := manager.NewWorkSpaceManager(deps)
	h := &handler.Handler{
		Locations:     manager.NewLocationsManager(deps, workspaces),
		WorkSpaces:    workspaces,
		Viewings:      manager.NewViewingManager(deps, manager.NewUserStatusChecker(store.Users)),
		Auth:          manager.NewAuthManager(deps),
		Notifications: manager.NewNotificationsManager(deps),
		Log:           log,
	}

	enforcer, err := middleware.NewEnforcer()
	if err != nil {
		t.Fatalf("enforcer: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler(log)})
	SetupRoutes(app, h, store.Users, enforcer, log)

	if err := store.Areas.Create(context.Background(), &model.Area{Name: "Soho", Slug: "soho"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return &testApp{t: t, app: app, store: store, notifier: notifier}
}

func (a *testApp) do(method, path, token string, body any) (int, []byte) {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal: %v", err)
		}
		reader = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	if err != nil {
		a.t.Fatalf("%s %s: %v", method, path, err)
	}
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func (a *testApp) decode(raw []byte) map[string]any {
	a.t.Helper()
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		a.t.Fatalf("decode %s: %v", raw, err)
	}
	return out
}

func (a *testApp) signup(email, role string) string {
	a.t.Helper()
	status, raw := a.do("POST", "/api/auth/register", "", map[string]any{
		"email": email, "password": "123456cw", "firstName": "Sam", "lastName": "Lee", "role": role,
	})
	if status != fiber.StatusCreated {
		a.t.Fatalf("register %s: %d %s", email, status, raw)
	}
	status, raw = a.do("POST", "/api/auth/login", "", map[string]any{"email": email, "password": "123456cw"})
	if status != fiber.StatusOK {
		a.t.Fatalf("login %s: %d %s", email, status, raw)
	}
	token, _ := a.decode(raw)["accessToken"].(string)
	if token == "" {
		a.t.Fatalf("login returned no token: %s", raw)
	}
	return token
}

func locationBody() map[string]any {
	return map[string]any{
		"name":        "Soho Works",
		"address":     "180 Strand",
		"latitude":    "51.5115",
		"longitude":   "-0.1160",
		"town":        "London",
		"postcode":    "WC2R 1EA",
		"description": "Members club",
		"area":        "soho",
	}
}

func TestViewingFlow(t *testing.T) {
	a := newTestApp(t)
	seller := a.signup("seller@flow.test", "seller")
	buyer := a.signup("Buyer@Flow.test", "buyer")

	status, raw := a.do("POST", "/api/seller/location", seller, locationBody())
	if status != fiber.StatusCreated {
		t.Fatalf("create location: %d %s", status, raw)
	}
	locationID := uint(a.decode(raw)["id"].(float64))

	status, raw = a.do("POST", fmt.Sprintf("/api/seller/location/%d/workspace", locationID), seller, map[string]any{
		"type": "meeting-room", "quantity": 1, "price": 35, "size": 18, "capacity": 6, "description": "Glass room",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("add workspace: %d %s", status, raw)
	}
	workspaceID := uint(a.decode(raw)["id"].(float64))

	start := time.Now().Add(48 * time.Hour).Unix()
	status, raw = a.do("POST", fmt.Sprintf("/api/buyer/workspace/%d/viewing", workspaceID), buyer, map[string]any{
		"startTime": start, "phone": "+447700900456",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("add viewing: %d %s", status, raw)
	}

	status, raw = a.do("GET", fmt.Sprintf("/api/seller/workspace/%d/viewings", workspaceID), seller, nil)
	if status != fiber.StatusOK {
		t.Fatalf("list viewings: %d %s", status, raw)
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil || len(rows) != 1 {
		t.Fatalf("rows = %s", raw)
	}
	if rows[0]["email"] != "buyer@flow.test" || int64(rows[0]["startTime"].(float64)) != start {
		t.Fatalf("row = %v", rows[0])
	}
	viewingID := uint(rows[0]["id"].(float64))

	status, raw = a.do("PUT", fmt.Sprintf("/api/seller/workspace/%d/viewing/%d/status", workspaceID, viewingID), seller, map[string]any{"status": "accepted"})
	if status != fiber.StatusOK || a.decode(raw)["internalNotification"] != false {
		t.Fatalf("accept: %d %s", status, raw)
	}

	status, raw = a.do("GET", "/api/buyer/notifications", buyer, nil)
	if status != fiber.StatusOK || !strings.Contains(string(raw), "viewing_accepted") {
		t.Fatalf("buyer notifications: %d %s", status, raw)
	}

	status, raw = a.do("PUT", fmt.Sprintf("/api/buyer/viewing/%d/cancel", viewingID), buyer, nil)
	if status != fiber.StatusOK {
		t.Fatalf("cancel: %d %s", status, raw)
	}

	if sent := a.notifier.Events(); len(sent) != 3 {
		t.Fatalf("emails = %v", sent)
	}
}

func TestRoleAndAuthGuards(t *testing.T) {
	a := newTestApp(t)
	buyer := a.signup("buyer@guard.test", "buyer")
	seller := a.signup("seller@guard.test", "seller")

	if status, _ := a.do("GET", "/api/seller/locations", "", nil); status != fiber.StatusUnauthorized {
		t.Fatalf("anonymous: %d", status)
	}
	if status, _ := a.do("GET", "/api/seller/locations", "not-a-jwt", nil); status != fiber.StatusUnauthorized {
		t.Fatalf("bad token: %d", status)
	}
	if status, _ := a.do("GET", "/api/seller/locations", buyer, nil); status != fiber.StatusForbidden {
		t.Fatalf("buyer on seller route: %d", status)
	}
	if status, _ := a.do("GET", "/api/buyer/notifications", seller, nil); status != fiber.StatusForbidden {
		t.Fatalf("seller on buyer route: %d", status)
	}

	status, raw := a.do("GET", "/api/seller/locations", seller, nil)
	if status != fiber.StatusOK || strings.TrimSpace(string(raw)) != `{"locations":[]}` {
		t.Fatalf("empty locations: %d %s", status, raw)
	}
}

func TestLocationRouteValidation(t *testing.T) {
	a := newTestApp(t)
	seller := a.signup("seller@valid.test", "seller")

	if status, _ := a.do("GET", "/api/seller/location/abc", seller, nil); status != fiber.StatusBadRequest {
		t.Fatalf("non numeric id: %d", status)
	}

	status, raw := a.do("GET", "/api/seller/location/42", seller, nil)
	if status != fiber.StatusBadRequest || a.decode(raw)["message"] != "Location with id 42 was not found" {
		t.Fatalf("missing location: %d %s", status, raw)
	}

	body := locationBody()
	delete(body, "name")
	status, raw = a.do("POST", "/api/seller/location", seller, body)
	if status != fiber.StatusBadRequest || !strings.Contains(string(raw), `"attribute":"name"`) {
		t.Fatalf("missing name: %d %s", status, raw)
	}

	status, raw = a.do("POST", "/api/seller/location", seller, map[string]any{})
	if status != fiber.StatusBadRequest || a.decode(raw)["message"] != "Requested data is empty" {
		t.Fatalf("empty body: %d %s", status, raw)
	}

	status, raw = a.do("POST", "/api/auth/register", "", map[string]any{
		"email": "seller@valid.test", "password": "123456cw", "firstName": "A", "lastName": "B", "role": "seller",
	})
	if status != fiber.StatusBadRequest || !strings.Contains(string(raw), `"attribute":"email"`) {
		t.Fatalf("duplicate email: %d %s", status, raw)
	}
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	if status, _ := a.do("GET", "/health", "", nil); status != fiber.StatusOK {
		t.Fatalf("health: %d", status)
	}
}
