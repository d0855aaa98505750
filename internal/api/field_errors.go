package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrors is the key used for errors that cannot be attributed
// to a single request field (e.g. malformed JSON).
const NonFieldErrors = "non_field_errors"

// FieldErrors converts a binding error into the field-keyed 400 body:
// {"email": ["Enter a valid email address."], ...}.
// Field names are the lowercased struct field names, which match the
// JSON tags of all request DTOs in this project.
func FieldErrors(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out[NonFieldErrors] = []string{"Invalid request body."}
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fieldErrorMessage(fe))
	}
	return out
}

// FieldError builds a single-field error body for validation failures
// detected outside of binding (e.g. an out-of-enum topic).
func FieldError(field, message string) map[string][]string {
	return map[string][]string{field: {message}}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return "This value is invalid."
	}
}
