package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type sessionOnlyAuthService struct {
	validateFn func(ctx context.Context, email, refreshToken string) (*domain.SessionIdentity, error)
}

func (s *sessionOnlyAuthService) Register(context.Context, ports.RegisterInput) (*domain.PublicUser, error) {
	panic("not expected")
}

func (s *sessionOnlyAuthService) Login(context.Context, string, string) (*domain.PublicUser, *ports.TokenPair, error) {
	panic("not expected")
}

func (s *sessionOnlyAuthService) Refresh(context.Context, string) (*ports.TokenPair, error) {
	panic("not expected")
}

func (s *sessionOnlyAuthService) ChangePassword(context.Context, string, string, string) error {
	panic("not expected")
}

func (s *sessionOnlyAuthService) ValidateSession(ctx context.Context, email, refreshToken string) (*domain.SessionIdentity, error) {
	return s.validateFn(ctx, email, refreshToken)
}

func sessionContext(email, cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}
	return c, rec
}

func TestSession_ValidCookie(t *testing.T) {
	auth := &sessionOnlyAuthService{
		validateFn: func(_ context.Context, email, refreshToken string) (*domain.SessionIdentity, error) {
			if email != "alice@example.com" || refreshToken != "live-token" {
				t.Fatalf("unexpected validation input: %s / %s", email, refreshToken)
			}
			return &domain.SessionIdentity{ID: "u-1", FirstName: "Alice", Email: email}, nil
		},
	}

	c, _ := sessionContext("alice@example.com", "live-token")
	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	if err := Session(auth)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not called")
	}

	identity, ok := c.Get("session").(*domain.SessionIdentity)
	if !ok || identity.ID != "u-1" {
		t.Fatalf("session identity not injected, got %v", c.Get("session"))
	}
}

func TestSession_MissingEmail(t *testing.T) {
	c, _ := sessionContext("", "live-token")
	err := Session(&sessionOnlyAuthService{})(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSession_MissingCookie(t *testing.T) {
	c, _ := sessionContext("alice@example.com", "")
	err := Session(&sessionOnlyAuthService{})(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSession_InvalidToken(t *testing.T) {
	auth := &sessionOnlyAuthService{
		validateFn: func(context.Context, string, string) (*domain.SessionIdentity, error) {
			return nil, domain.ErrInvalidToken
		},
	}

	c, _ := sessionContext("alice@example.com", "stale-token")
	err := Session(auth)(func(echo.Context) error { return nil })(c)
	if err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken to propagate, got %v", err)
	}
}
