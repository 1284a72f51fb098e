package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts validator.ValidationErrors into form-field keyed
// messages. Non-validation errors land under the "" (non-field) key.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields[""] = err.Error()
		return fields
	}

	for _, e := range validationErrors {
		// Keep the first message per field, as forms display one
		if _, seen := fields[e.Field()]; seen {
			continue
		}
		fields[e.Field()] = formatSingleError(e)
	}
	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "This field is required."

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Ensure this value has at most %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", param)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Ensure this value has at least %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", param)

	case "oneof":
		return fmt.Sprintf("Select a valid choice. Must be one of: %s.", strings.ReplaceAll(param, " ", ", "))

	case "email":
		return "Enter a valid email address."

	case "money":
		return "Enter a number with at most 10 digits and 2 decimal places."

	default:
		return fmt.Sprintf("Invalid value (%s).", e.Tag())
	}
}
