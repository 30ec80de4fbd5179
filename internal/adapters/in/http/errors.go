package http

import (
	"errors"
	"net/http"

	"logistics/internal/adapters/in/http/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors to response codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidPrecondition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrCapabilityUnavailable):
		return http.StatusNotImplemented
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Client errors carry the error text,
// server errors only the summary.
func (s *Server) fail(ctx echo.Context, err error, summary string) error {
	code := statusFor(err)
	message := summary + ": " + err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), summary,
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = summary
	}
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// errorHandler renders errors returned by middleware and parameter binding.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}
	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: code, Message: message})
}
