package errs

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError names one violated request field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError lists every violated field of a request.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// CollectValidationError flattens err (possibly built with errors.Join) into a
// ValidationError. Leaves that are not field errors are reported under
// the "request" field. Returns nil for a nil err.
func CollectValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var existing *ValidationError
	if errors.As(err, &existing) && !isJoined(err) {
		return existing
	}

	v := &ValidationError{}
	collect(err, v)
	return v
}

func isJoined(err error) bool {
	_, ok := err.(interface{ Unwrap() []error })
	return ok
}

func collect(err error, v *ValidationError) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collect(e, v)
		}
		return
	}

	var (
		required *ValueIsRequiredError
		invalid  *ValueIsInvalidError
		outRange *ValueIsOutOfRangeError
		nested   *ValidationError
	)
	switch {
	case errors.As(err, &nested):
		v.Fields = append(v.Fields, nested.Fields...)
	case errors.As(err, &required):
		v.Fields = append(v.Fields, FieldError{Field: required.ParamName, Reason: "is required"})
	case errors.As(err, &outRange):
		v.Fields = append(v.Fields, FieldError{
			Field:  outRange.ParamName,
			Reason: fmt.Sprintf("must be between %v and %v", outRange.Min, outRange.Max),
		})
	case errors.As(err, &invalid):
		reason := "is invalid"
		if invalid.Cause != nil {
			reason = invalid.Cause.Error()
		}
		v.Fields = append(v.Fields, FieldError{Field: invalid.ParamName, Reason: reason})
	default:
		v.Fields = append(v.Fields, FieldError{Field: "request", Reason: err.Error()})
	}
}

// Has reports whether field is among the violations.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
