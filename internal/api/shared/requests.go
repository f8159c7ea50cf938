package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse. Field names in validation errors
// are taken from the json struct tags so clients see the wire names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// ValidationFieldErrors converts a validator error into per-field records
// suitable for a 400 response body. Unknown errors map to a single
// catch-all record so the response shape stays stable.
func ValidationFieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "body", Message: "invalid request"}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldErr.Field(),
			Message: validationTagMessage(fieldErr),
		})
	}
	return fieldErrors
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(fieldErr validator.FieldError) string {
	switch fieldErr.ActualTag() {
	case "required":
		return "is required"
	case "min":
		return "cannot be empty"
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	default:
		return "is invalid"
	}
}
