package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"tours/internal/adapters/in/http/api"
	"tours/internal/core/application/usecases/commands"
	"tours/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail writes the error body for err. fallback is the message shown for
// failures that carry no client-facing detail.
func (s *Server) fail(ctx echo.Context, err error, fallback string) error {
	var (
		validation *errs.ValidationError
		notFound   *errs.ObjectNotFoundError
	)

	switch {
	case errors.As(err, &validation):
		fields := make([]api.FieldError, len(validation.Fields))
		for i, f := range validation.Fields {
			fields[i] = api.FieldError{Field: f.Field, Reason: f.Reason}
		}
		return ctx.JSON(http.StatusUnprocessableEntity, api.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  &fields,
		})
	case errors.Is(err, errMalformedBody):
		return badRequest(ctx, "Invalid request body")
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, api.Error{
			Code:    http.StatusNotFound,
			Message: capitalize(notFound.ParamName) + " not found",
		})
	case errors.Is(err, commands.ErrContactUnavailable):
		s.logger.WarnContext(ctx.Request().Context(), "Contact message rejected", "error", err)
		return ctx.JSON(http.StatusServiceUnavailable, api.Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Contact form is temporarily unavailable. Please try again later.",
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err,
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID))
		return ctx.JSON(http.StatusInternalServerError, api.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, api.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

var errMalformedBody = errors.New("malformed request body")

// bind decodes the request body into dst. A field of the wrong JSON type is
// reported as a validation failure of that field.
func bind(ctx echo.Context, dst any) error {
	err := ctx.Bind(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.NewValidationError(errs.FieldError{
			Field:  typeErr.Field,
			Reason: "must be " + jsonKind(typeErr.Type),
		})
	}
	return fmt.Errorf("%w: %w", errMalformedBody, err)
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() { //nolint:exhaustive // remaining kinds never appear in request bodies
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Ptr:
		return jsonKind(t.Elem())
	default:
		return "a valid value"
	}
}

func pathID(id int) (uint, error) {
	if id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter id: must be positive")
	}
	return uint(id), nil
}

// ErrorHandler renders errors that escape the handlers (routing, parameter
// binding, middleware) in the API error format.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code, message := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	var werr error
	if ctx.Request().Method == http.MethodHead {
		werr = ctx.NoContent(code)
	} else {
		werr = ctx.JSON(code, api.Error{Code: code, Message: message})
	}
	if werr != nil {
		ctx.Logger().Error(werr)
	}
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
