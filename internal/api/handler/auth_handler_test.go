package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/homeandown/listings-api/internal/core/domain"
	"github.com/homeandown/listings-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	identifyFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Identify(ctx context.Context, token string) (*domain.User, error) {
	return s.identifyFn(ctx, token)
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	return he
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			if input.FirstName != "Alice" || input.UserType != "buyer" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "token123", &domain.User{ID: "u1", Email: input.Email, UserType: input.UserType}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"first_name":"Alice","last_name":"Nguyen","email":"alice@example.com","password":"pass123","user_type":"buyer"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "u1" || user["email"] != "alice@example.com" || user["user_type"] != "buyer" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"first_name":"Alice"}`)

	he := httpError(t, h.Register(c))
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	msg, _ := he.Message.(string)
	for _, field := range []string{"last_name", "email", "password", "user_type"} {
		if !strings.Contains(msg, field+" is required") {
			t.Fatalf("message does not name %s: %q", field, msg)
		}
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	})

	body := `{"first_name":"Alice","last_name":"Nguyen","email":"alice@example.com","password":"pass123","user_type":"buyer"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", body)

	// The central error handler maps ErrUserExists to 400 "User already exists".
	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "pass123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{
				ID:                 "u1",
				FirstName:          "Alice",
				LastName:           "Nguyen",
				Email:              email,
				UserType:           "buyer",
				Status:             "active",
				VerificationStatus: "pending",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["status"] != "active" || user["verification_status"] != "pending" {
		t.Fatalf("profile fields missing: %+v", user)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com"}`)

	he := httpError(t, h.Login(c))
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"bad"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func meBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Me_NoToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		identifyFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/me", "")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := meBody(t, rec)
	if resp["user"] != nil || resp["profile"] != nil {
		t.Fatalf("expected null user and profile, got %+v", resp)
	}
}

func TestAuthHandler_Me_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		identifyFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrInvalidToken
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/me", "")
	c.Request().Header.Set("Authorization", "Bearer garbage")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Never an error status, regardless of header content.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := meBody(t, rec)
	if resp["user"] != nil || resp["profile"] != nil {
		t.Fatalf("expected null user and profile, got %+v", resp)
	}
}

func TestAuthHandler_Me_ValidToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		identifyFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{ID: "u1", Email: "alice@example.com", UserType: "buyer", FirstName: "Alice", LastName: "Nguyen"}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/me", "")
	c.Request().Header.Set("Authorization", "Bearer good-token")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := meBody(t, rec)
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "u1" || user["user_type"] != "buyer" {
		t.Fatalf("unexpected user: %+v", resp["user"])
	}
	profile, ok := resp["profile"].(map[string]any)
	if !ok || profile["first_name"] != "Alice" || profile["last_name"] != "Nguyen" {
		t.Fatalf("unexpected profile: %+v", resp["profile"])
	}
}
