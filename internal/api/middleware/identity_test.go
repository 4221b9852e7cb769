package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/token"
)

func newContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func issue(t *testing.T, codec *token.Codec, id domain.Identity) string {
	t.Helper()
	signed, err := codec.Issue(id)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestResolveIdentity_ValidToken(t *testing.T) {
	codec := token.NewCodec("secret")
	want := domain.Identity{ID: "42", Email: "alice@example.com", FirstName: "Alice", LastName: "Doe", Role: domain.RoleAdmin}
	c, rec := newContext("Bearer " + issue(t, codec, want))

	called := false
	handler := ResolveIdentity(codec)(func(c echo.Context) error {
		called = true
		got := IdentityFrom(c)
		if got == nil {
			t.Fatalf("identity not set")
		}
		if *got != want {
			t.Fatalf("expected %+v, got %+v", want, *got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestResolveIdentity_NoTokenIsAnonymous(t *testing.T) {
	codec := token.NewCodec("secret")

	for _, header := range []string{"", "   "} {
		c, _ := newContext(header)
		called := false
		handler := ResolveIdentity(codec)(func(c echo.Context) error {
			called = true
			if IdentityFrom(c) != nil {
				t.Fatalf("header %q: expected anonymous request", header)
			}
			return nil
		})

		if err := handler(c); err != nil {
			t.Fatalf("header %q: handler error: %v", header, err)
		}
		if !called {
			t.Fatalf("header %q: next not called", header)
		}
	}
}

func TestResolveIdentity_SchemeWithoutTokenIsRejected(t *testing.T) {
	codec := token.NewCodec("secret")

	for _, header := range []string{"Bearer", "Bearer   "} {
		c, _ := newContext(header)
		handler := ResolveIdentity(codec)(func(c echo.Context) error {
			t.Fatalf("header %q: next must not run", header)
			return nil
		})

		if err := handler(c); !errors.Is(err, domain.ErrMalformedToken) {
			t.Fatalf("header %q: expected ErrMalformedToken, got %v", header, err)
		}
	}
}

func TestResolveIdentity_RejectsBadTokens(t *testing.T) {
	codec := token.NewCodec("secret")
	other := token.NewCodec("other-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "1",
		"type": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	wrongSecret, err := unsigned.SignedString([]byte("nope"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	cases := map[string]string{
		"garbage":      "Bearer not-a-token",
		"wrong scheme": "Token abc",
		"basic auth":   "Basic YWxhZGRpbjpvcGVuc2VzYW1l",
		"wrong secret": "Bearer " + wrongSecret,
		"other codec":  "Bearer " + issue(t, other, domain.Identity{ID: "1", Role: domain.RoleCustomer}),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(header)
			handler := ResolveIdentity(codec)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			if !errors.Is(err, domain.ErrMalformedToken) {
				t.Fatalf("expected ErrMalformedToken, got %v", err)
			}
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected an authentication error, got %v", err)
			}
		})
	}
}

func TestResolveIdentity_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-token.TTL - time.Minute)
	old := token.NewCodec("secret", token.WithClock(func() time.Time { return issuedAt }))
	raw := issue(t, old, domain.Identity{ID: "7", Email: "late@example.com", Role: domain.RoleCustomer})

	c, _ := newContext("Bearer " + raw)
	handler := ResolveIdentity(token.NewCodec("secret"))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestResolveIdentity_MissingSecret(t *testing.T) {
	raw := issue(t, token.NewCodec("secret"), domain.Identity{ID: "7", Role: domain.RoleCustomer})

	c, _ := newContext("Bearer " + raw)
	handler := ResolveIdentity(token.NewCodec(""))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		token   string
		present bool
		wantErr bool
	}{
		{header: "", present: false},
		{header: "Bearer abc", token: "abc", present: true},
		{header: "bearer  abc ", token: "abc", present: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer   ", wantErr: true},
		{header: "Token abc", wantErr: true},
		{header: "abc", wantErr: true},
	}
	for _, tc := range cases {
		raw, present, err := bearerToken(tc.header)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: unexpected error %v", tc.header, err)
		}
		if raw != tc.token || present != tc.present {
			t.Fatalf("%q: got (%q, %v), want (%q, %v)", tc.header, raw, present, tc.token, tc.present)
		}
	}
}
