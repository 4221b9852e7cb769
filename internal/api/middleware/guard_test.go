package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

func withIdentity(id *domain.Identity) echo.Context {
	c, _ := newContext("")
	if id != nil {
		SetIdentity(c, id)
	}
	return c
}

func TestRequireAuthenticated(t *testing.T) {
	customer := &domain.Identity{ID: "2", Email: "guest@example.com", Role: domain.RoleCustomer}

	called := false
	handler := RequireAuthenticated()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(withIdentity(customer)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}

	called = false
	if err := handler(withIdentity(nil)); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if called {
		t.Fatalf("anonymous request reached the handler")
	}
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name    string
		id      *domain.Identity
		wantErr error
	}{
		{name: "admin", id: &domain.Identity{ID: "1", Role: domain.RoleAdmin}},
		{name: "customer", id: &domain.Identity{ID: "2", Role: domain.RoleCustomer}, wantErr: domain.ErrAdminOnly},
		{name: "unknown role", id: &domain.Identity{ID: "3", Role: "owner"}, wantErr: domain.ErrAdminOnly},
		{name: "anonymous", id: nil, wantErr: domain.ErrUnauthenticated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := RequireAdmin()(func(c echo.Context) error {
				called = true
				return nil
			})

			err := handler(withIdentity(tc.id))
			if tc.wantErr == nil {
				if err != nil || !called {
					t.Fatalf("expected pass through, got err=%v called=%v", err, called)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if called {
				t.Fatalf("gate let the request through")
			}
		})
	}
}

func TestGateOrder_AuthenticationBeforeRole(t *testing.T) {
	handler := RequireAuthenticated()(RequireAdmin()(func(c echo.Context) error { return nil }))

	if err := handler(withIdentity(nil)); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("anonymous: expected 401 kind, got %v", err)
	}
	customer := &domain.Identity{ID: "2", Role: domain.RoleCustomer}
	if err := handler(withIdentity(customer)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("customer: expected 403 kind, got %v", err)
	}
}
