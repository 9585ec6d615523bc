package middleware

import (
	"errors"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/utils"

	"github.com/casbin/casbin"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`

var rbacPolicies = [][]string{
	{constants.ROLE_SELLER, "/api/seller/*", "(GET)|(POST)|(PUT)|(DELETE)"},
	{constants.ROLE_BUYER, "/api/buyer/*", "(GET)|(POST)|(PUT)|(DELETE)"},
	{constants.ROLE_ADMIN, "/api/seller/*", "(GET)"},
	{constants.ROLE_ADMIN, "/api/buyer/*", "(GET)"},
	{constants.ROLE_SELLER, "/api/ws/*", "(GET)"},
	{constants.ROLE_BUYER, "/api/ws/*", "(GET)"},
}

// NewEnforcer builds the role policy from the embedded model.
func NewEnforcer() (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcerSafe(casbin.NewModel(rbacModel))
	if err != nil {
		return nil, err
	}
	for _, p := range rbacPolicies {
		e.AddPolicy(p[0], p[1], p[2])
	}
	return e, nil
}

// Authorize must run after CurrentUser.
func Authorize(e *casbin.Enforcer, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("currentUser").(*model.User)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no user"))
		}

		allowed, err := e.EnforceSafe(user.Role, c.Path(), c.Method())
		if err != nil {
			log.WithError(err).Error("casbin enforce failed")
			return err
		}
		if !allowed {
			log.WithFields(logrus.Fields{"userId": user.ID, "role": user.Role, "path": c.Path()}).Warn("forbidden")
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("forbidden"))
		}
		return c.Next()
	}
}
