package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/homeandown/listings-api/internal/core/domain"
)

type stubTokens struct {
	userID string
	err    error
}

func (s *stubTokens) Issue(string) (string, error) { return "", nil }

func (s *stubTokens) Verify(string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.userID, nil
}

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractBearer(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"BEARER abc123", "abc123"},
		{"abc123", "abc123"},
		{"Bearer ", ""},
	}
	for _, tc := range cases {
		if got := ExtractBearer(tc.header); got != tc.want {
			t.Fatalf("ExtractBearer(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestAuth_ValidToken(t *testing.T) {
	c, rec := newAuthContext(t, "Bearer good-token")

	called := false
	mw := Auth(&stubTokens{userID: "user_7"})
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "user_7" {
			t.Fatalf("user_id not injected")
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

func TestAuth_BareTokenWithoutPrefix(t *testing.T) {
	c, _ := newAuthContext(t, "good-token")

	called := false
	mw := Auth(&stubTokens{userID: "user_7"})
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("bare token should be accepted")
	}
}

func TestAuth_MissingToken(t *testing.T) {
	for _, header := range []string{"", "Bearer "} {
		c, _ := newAuthContext(t, header)

		mw := Auth(&stubTokens{userID: "user_7"})
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("expected HTTPError, got %v", err)
		}
		if he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", he.Code)
		}
		if he.Message != "Token missing" {
			t.Fatalf("expected 'Token missing', got %v", he.Message)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	c, _ := newAuthContext(t, "Bearer bad-token")

	mw := Auth(&stubTokens{err: domain.ErrInvalidToken})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if he.Message != "Token invalid" {
		t.Fatalf("expected 'Token invalid', got %v", he.Message)
	}
}
