package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/api/middleware"
	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, caller *domain.Identity, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	meFn       func(ctx context.Context, caller *domain.Identity) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, caller *domain.Identity, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, caller, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, caller *domain.Identity) (*domain.User, error) {
	return s.meFn(ctx, caller)
}

// newJSONContext builds an echo context for a JSON request, with the
// validator installed the way the router installs it.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, caller *domain.Identity, in ports.RegisterInput) (*domain.User, error) {
			if caller != nil {
				t.Fatalf("expected anonymous caller, got %+v", caller)
			}
			if in.Email != "alice@example.com" || in.FirstName != "Alice" || in.WhatsApp != "+5215512345678" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "1", Email: in.Email, FirstName: in.FirstName, PasswordHash: "hash", Role: domain.RoleCustomer}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/users",
		`{"email":"alice@example.com","password":"secret","firstName":"Alice","whatsApp":"+5215512345678"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	user, ok := decode(t, rec)["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["type"] != "customer" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("response leaks the password hash: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_PassesCaller(t *testing.T) {
	admin := &domain.Identity{ID: "9", Email: "root@example.com", Role: domain.RoleAdmin}
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, caller *domain.Identity, in ports.RegisterInput) (*domain.User, error) {
			if caller != admin || in.Type != "admin" {
				t.Fatalf("unexpected caller or type: %+v %q", caller, in.Type)
			}
			return &domain.User{ID: "2", Email: in.Email, Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/users", `{"email":"staff@example.com","password":"secret","type":"admin"}`)
	middleware.SetIdentity(c, admin)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, caller *domain.Identity, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/api/users", `{"email":"bob@example.com","password":"x"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, caller *domain.Identity, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	for _, body := range []string{"not-json", `{"password":"x"}`, `{"email":"not-an-email","password":"x"}`} {
		c, _ := newJSONContext(http.MethodPost, "/api/users", body)
		if err := handler.Register(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("body %s: expected validation error, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "1", Email: email, FirstName: "Alice", Role: domain.RoleAdmin, Phone: "555"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/users/login", `{"email":"alice@example.com","password":"secret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decode(t, rec)
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if msg, _ := resp["message"].(string); msg == "" {
		t.Fatalf("expected a message")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "1" || user["type"] != "admin" || user["firstName"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, extra := user["phone"]; extra {
		t.Fatalf("login user must only carry identity fields: %+v", user)
	}
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	for _, want := range []error{domain.ErrInvalidCredentials, domain.ErrUserNotFound, domain.ErrAccountBlocked} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
				return "", nil, want
			},
		}
		c, _ := newJSONContext(http.MethodPost, "/api/users/login", `{"email":"a@x.com","password":"wrong"}`)

		if err := NewAuthHandler(stub).Login(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestAuthHandler_Me(t *testing.T) {
	id := &domain.Identity{ID: "3", Email: "me@example.com", Role: domain.RoleCustomer}
	stub := &stubAuthService{
		meFn: func(ctx context.Context, caller *domain.Identity) (*domain.User, error) {
			if caller != id {
				t.Fatalf("unexpected caller %+v", caller)
			}
			return &domain.User{ID: "3", Email: "me@example.com", Role: domain.RoleCustomer, Image: "me.png", Phone: "555"}, nil
		},
	}

	c, rec := newJSONContext(http.MethodGet, "/api/users/me", "")
	middleware.SetIdentity(c, id)

	if err := NewAuthHandler(stub).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	user, ok := decode(t, rec)["user"].(map[string]any)
	if !ok || user["image"] != "me.png" || user["type"] != "customer" {
		t.Fatalf("unexpected payload: %+v", user)
	}
	if _, extra := user["phone"]; extra {
		t.Fatalf("profile must be a subset: %+v", user)
	}
}
