package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func roleContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func TestRBAC_AllowedRole(t *testing.T) {
	c, _ := roleContext("admin")
	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	if err := RBAC("admin")(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not called")
	}
}

func TestRBAC_DeniedRole(t *testing.T) {
	c, rec := roleContext("employee")
	next := func(c echo.Context) error {
		t.Fatalf("next handler must not be called")
		return nil
	}

	if err := RBAC("admin")(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_MissingRole(t *testing.T) {
	c, rec := roleContext("")
	if err := RBAC("admin")(func(echo.Context) error { return nil })(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_MultipleRoles(t *testing.T) {
	c, _ := roleContext("employee")
	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	if err := RBAC("admin", "employee")(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not called")
	}
}
