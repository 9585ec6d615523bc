package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"coworking_market/constants"
	"coworking_market/model"
	"coworking_market/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates a struct and returns its field errors, or nil.
func Check(input any) []model.FieldError {
	if err := validate.Struct(input); err != nil {
		return Translate(err)
	}
	return nil
}

func Translate(err error) []model.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []model.FieldError{{Attribute: "", Details: err.Error()}}
	}

	out := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, model.FieldError{
			Attribute: attribute(fe),
			Details:   details(fe),
		})
	}
	return out
}

// attribute drops the root struct name from the namespace: nearby[0].name.
func attribute(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func details(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "required_if", "required_unless":
		return "This value should not be blank."
	case "max":
		if isString {
			return fmt.Sprintf("This value is too long. It should have %s characters or less.", fe.Param())
		}
		return fmt.Sprintf("This value should be %s or less.", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("This value is too short. It should have %s characters or more.", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("This collection should contain %s elements or more.", fe.Param())
		}
		return fmt.Sprintf("This value should be %s or more.", fe.Param())
	case "gt":
		return fmt.Sprintf("This value should be greater than %s.", fe.Param())
	case "gtefield":
		return fmt.Sprintf("This value should be greater than or equal to %s.", lowerFirst(fe.Param()))
	case "oneof":
		return "The value you selected is not a valid choice."
	case "email":
		return "This value is not a valid email address."
	case "latitude":
		return "This value is not a valid latitude."
	case "longitude":
		return "This value is not a valid longitude."
	case "datetime":
		return "This value is not a valid time."
	case "url":
		return "This value is not a valid URL."
	}
	return "This value is not valid."
}

// GetById parses a numeric route param into Locals under the same key.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value, err := strconv.ParseUint(c.Params(key), 10, 64)
		if err != nil || value == 0 {
			return utils.MessageResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		c.Locals(key, uint(value))
		return c.Next()
	}
}

// decode parses the JSON body into T, answering "Requested data is empty"
// on blank or malformed input.
func decode[T any](c *fiber.Ctx) (*T, bool, error) {
	if utils.IsEmptyBody(c.Body()) {
		return nil, false, utils.MessageResponse(c, fiber.StatusBadRequest, constants.REQUESTED_DATA_IS_EMPTY)
	}
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, false, utils.MessageResponse(c, fiber.StatusBadRequest, constants.REQUESTED_DATA_IS_EMPTY)
	}
	return &input, true, nil
}
