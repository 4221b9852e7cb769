package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/api/middleware"
	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

// caller returns the identity resolved for the request, or nil when anonymous.
func caller(c echo.Context) *domain.Identity {
	return middleware.IdentityFrom(c)
}

// bind decodes the request body into req and runs its validate tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Invalid("invalid payload")
	}
	return c.Validate(req)
}

// intParam parses a numeric path parameter.
func intParam(c echo.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Invalid("%s must be a number", name)
	}
	return n, nil
}

// intQuery parses an optional numeric query parameter.
func intQuery(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Invalid("%s must be a number", name)
	}
	return n, nil
}

type messageResponse struct {
	Message string `json:"message"`
}
