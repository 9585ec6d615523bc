package helper

import (
	"fmt"
	"strings"

	"coworking_market/constants"
)

var adminRoutes = map[string]string{
	constants.ADMIN_LOCATION_EDIT: "/admin/app/location/%d/edit",
}

// LinkGenerator builds absolute links for emails and in-app notifications.
type LinkGenerator struct {
	FrontURL string
	AdminURL string
}

func NewLinkGenerator(frontURL, adminURL string) *LinkGenerator {
	return &LinkGenerator{
		FrontURL: strings.TrimRight(frontURL, "/"),
		AdminURL: strings.TrimRight(adminURL, "/"),
	}
}

// Front formats one of the FRONT_* route patterns.
func (g *LinkGenerator) Front(route string, args ...any) string {
	return g.FrontURL + fmt.Sprintf(route, args...)
}

// Admin resolves a named admin route.
func (g *LinkGenerator) Admin(name string, args ...any) string {
	pattern, ok := adminRoutes[name]
	if !ok {
		return g.AdminURL
	}
	return g.AdminURL + fmt.Sprintf(pattern, args...)
}
