package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"coworking_market/constants"
	"coworking_market/model"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func TestEnforcerPolicies(t *testing.T) {
	e, err := NewEnforcer()
	if err != nil {
		t.Fatalf("enforcer: %v", err)
	}

	cases := []struct {
		role, path, method string
		allowed            bool
	}{
		{constants.ROLE_SELLER, "/api/seller/location/3", "PUT", true},
		{constants.ROLE_SELLER, "/api/buyer/notifications", "GET", false},
		{constants.ROLE_BUYER, "/api/buyer/viewing/4/cancel", "PUT", true},
		{constants.ROLE_BUYER, "/api/seller/locations", "GET", false},
		{constants.ROLE_ADMIN, "/api/seller/locations", "GET", true},
		{constants.ROLE_ADMIN, "/api/seller/location/3", "DELETE", false},
	}
	for _, tc := range cases {
		got, err := e.EnforceSafe(tc.role, tc.path, tc.method)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.role, tc.path, err)
		}
		if got != tc.allowed {
			t.Fatalf("%s %s %s = %v, want %v", tc.role, tc.method, tc.path, got, tc.allowed)
		}
	}
}

func TestAuthorizeMiddleware(t *testing.T) {
	e, _ := NewEnforcer()
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role := c.Get("X-Role"); role != "" {
			c.Locals("currentUser", &model.User{Role: role})
		}
		return c.Next()
	})
	app.Get("/api/seller/locations", Authorize(e, log), func(c *fiber.Ctx) error { return c.SendString("ok") })

	cases := map[string]int{
		constants.ROLE_SELLER: fiber.StatusOK,
		constants.ROLE_BUYER:  fiber.StatusForbidden,
		"":                    fiber.StatusUnauthorized,
	}
	for role, status := range cases {
		req := httptest.NewRequest("GET", "/api/seller/locations", nil)
		if role != "" {
			req.Header.Set("X-Role", role)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%q: %v", role, err)
		}
		if resp.StatusCode != status {
			t.Fatalf("%q: status = %d, want %d", role, resp.StatusCode, status)
		}
	}
}
