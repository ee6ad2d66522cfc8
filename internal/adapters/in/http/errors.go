package http

import (
	"errors"
	"net/http"

	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectIsInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body. Store failures are logged and hidden from clients.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"uri", ctx.Request().RequestURI,
			"error", err,
		)
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{Code: int32(code), Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders errors that escape the handlers (unknown routes, bad
// path parameters, panics turned into errors) with the same body as the API.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			e.Logger.Error(err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: int32(code), Message: message})
		}
		if writeErr != nil {
			e.Logger.Error(writeErr)
		}
	}
}
