package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Error
// carries the underlying cause of a 500 and is only filled when exposing
// errors is enabled.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs unexpected errors internally and hides their details unless exposeErrors is set.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, exposeErrors bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c, exposeErrors)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, exposeErrors bool) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, rate limiting, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		if he.Code >= http.StatusInternalServerError {
			logUnexpected(log, c, err)
		}
		return he.Code, errorResponse{Message: msg}
	}

	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized, errorResponse{Message: "Token has expired"}
	case errors.Is(err, domain.ErrMalformedToken):
		return http.StatusUnauthorized, errorResponse{Message: "Invalid token"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Message: "Invalid email or password."}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Message: "Please log in to access this resource."}
	case errors.Is(err, domain.ErrAdminOnly):
		return http.StatusForbidden, errorResponse{Message: "You do not have permission to access this resource."}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrConfiguration):
		logUnexpected(log, c, err)
		return http.StatusInternalServerError, errorResponse{Message: "Server configuration error"}
	}

	// Unexpected error: log the real cause, return a generic message.
	logUnexpected(log, c, err)

	body := errorResponse{Message: "Internal server error"}
	if exposeErrors {
		body.Error = err.Error()
	}
	return http.StatusInternalServerError, body
}

func logUnexpected(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
