package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

// RequireAuthenticated stops anonymous requests with 401.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !domain.IsAuthenticated(IdentityFrom(c)) {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireAdmin stops non-admin identities with 403. Mount it after
// RequireAuthenticated; on its own it still answers 401 for anonymous callers.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := IdentityFrom(c)
			if !domain.IsAuthenticated(id) {
				return domain.ErrUnauthenticated
			}
			if !domain.IsAdmin(id) {
				return domain.ErrAdminOnly
			}
			return next(c)
		}
	}
}
