// Package validation turns struct tag rules into an explicit Result value that
// handlers can branch on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Result is the outcome of validating a value. The zero Result is valid.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// Valid reports whether no rule failed
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Add records a failed rule for field
func (r *Result) Add(field, tag, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Tag: tag, Message: message})
}

// For returns the first message recorded for field
func (r Result) For(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Map returns the first message per field
func (r Result) Map() map[string]string {
	if r.Valid() {
		return nil
	}
	m := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Message
		}
	}
	return m
}

// Invalid returns a Result with a single failed rule
func Invalid(field, tag, message string) Result {
	var r Result
	r.Add(field, tag, message)
	return r
}

// Validator checks values against their `validate` struct tags
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json names
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Check validates v. Errors that are not rule failures (for example a non-struct
// argument) are reported against the empty field name.
func (v *Validator) Check(value any) Result {
	var r Result
	err := v.validate.Struct(value)
	if err == nil {
		return r
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		r.Add("", "invalid", err.Error())
		return r
	}
	for _, fe := range fieldErrs {
		r.Add(fe.Field(), fe.Tag(), message(fe))
	}
	return r
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
