// Package validation checks service inputs against the `validate` struct
// tags on the model types.
//
// Failures come back as an *errs.Error of kind Invalid whose wrapped
// FieldErrors name each offending field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/member-directory/internal/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// FieldError is a single rejected field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// FieldErrors is every rejected field of one input.
type FieldErrors []FieldError

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, fe := range f {
		parts = append(parts, fe.Field+" "+fe.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Struct validates v and labels a failure with op.
func Struct(op string, v any) error {
	return wrap(op, validate.Struct(v))
}

func extractFieldErrors(validationErrors validator.ValidationErrors) FieldErrors {
	fieldErrors := make(FieldErrors, 0, len(validationErrors))

	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}
		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}
		case "email":
			msg = "must be a valid email address"
		case "url", "http_url":
			msg = "must be a valid URL"
		case "excludesall":
			msg = "contains forbidden characters"
		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s:%s", err.Tag(), err.Param())
			} else {
				msg = err.Tag()
			}
		}

		fieldErrors = append(fieldErrors, FieldError{Field: err.Field(), Error: msg})
	}

	return fieldErrors
}

// StructExcept validates v skipping the named struct fields.
func StructExcept(op string, v any, fields ...string) error {
	return wrap(op, validate.StructExcept(v, fields...))
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.E(op, errs.Invalid, err)
	}

	return errs.E(op, errs.Invalid, extractFieldErrors(validationErrors))
}
