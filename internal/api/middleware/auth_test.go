package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

type stubVerifier struct {
	tokens map[string]string
}

func (s stubVerifier) VerifySessionToken(token string) (string, error) {
	if id, ok := s.tokens[token]; ok {
		return id, nil
	}
	return "", errors.New("invalid token")
}

var verifier = stubVerifier{tokens: map[string]string{
	"cookie-token": "user-from-cookie",
	"header-token": "user-from-header",
}}

func runAuth(t *testing.T, req *http.Request) (bool, echo.Context, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := Auth(verifier)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return called, c, err
}

func TestAuthMiddleware_Cookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})

	called, c, err := runAuth(t, req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if c.Get(UserIDKey) != "user-from-cookie" {
		t.Fatalf("user_id not set: %v", c.Get(UserIDKey))
	}
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	called, c, err := runAuth(t, req)
	if err != nil || !called {
		t.Fatalf("expected success, got err=%v called=%v", err, called)
	}
	if c.Get(UserIDKey) != "user-from-header" {
		t.Fatalf("user_id not set: %v", c.Get(UserIDKey))
	}
}

func TestAuthMiddleware_CookieWinsOverHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	_, c, _ := runAuth(t, req)
	if c.Get(UserIDKey) != "user-from-cookie" {
		t.Fatalf("expected cookie identity, got %v", c.Get(UserIDKey))
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no credentials", func(r *http.Request) {}},
		{"empty cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: ""}) }},
		{"unknown cookie token", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged"}) }},
		{"wrong scheme", func(r *http.Request) { r.Header.Set("Authorization", "Token header-token") }},
		{"bad bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer not-a-token") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)

			called, _, err := runAuth(t, req)
			if called {
				t.Fatalf("should not reach next")
			}
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
