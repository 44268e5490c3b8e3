package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// hexColorPattern: "#" followed by exactly 6 hex digits, case-insensitive.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// The theme endpoint requires full 6-digit colors; the builtin
	// "hexcolor" rule also admits shorthand #abc.
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateStruct checks for tag-based validation errors
func ValidateStruct(payload interface{}) error {
	return validate.Struct(payload)
}

// ValidationDetails flattens a validator error into a field → reason map so
// responses can report every violated field, not just the first.
func ValidationDetails(err error) map[string]string {
	details := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["body"] = err.Error()
		return details
	}
	for _, fe := range verrs {
		details[fe.Field()] = describeViolation(fe)
	}
	return details
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "hexcolor6":
		return "must be a hex color like #e10600"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
