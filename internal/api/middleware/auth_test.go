package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func authContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "alice@example.com",
		"uid":  "u-1",
		"role": "employee",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	c, _ := authContext("Bearer " + token)
	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	if err := Auth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not called")
	}
	if got, _ := c.Get("email").(string); got != "alice@example.com" {
		t.Fatalf("email claim not injected, got %v", c.Get("email"))
	}
	if got, _ := c.Get("uid").(string); got != "u-1" {
		t.Fatalf("uid claim not injected, got %v", c.Get("uid"))
	}
	if got, _ := c.Get("role").(string); got != "employee" {
		t.Fatalf("role claim not injected, got %v", c.Get("role"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	c, _ := authContext("")
	err := Auth(testSecret)(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "bearer-without-space"} {
		c, _ := authContext(header)
		err := Auth(testSecret)(func(echo.Context) error { return nil })(c)

		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 HTTPError, got %v", header, err)
		}
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "alice@example.com",
		"uid": "u-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	c, _ := authContext("Bearer " + token)
	err := Auth(testSecret)(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "alice@example.com",
		"uid": "u-1",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	c, _ := authContext("Bearer " + token)
	err := Auth(testSecret)(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_RejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none tokens must never pass, regardless of claims.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice@example.com",
		"uid": "u-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	c, _ := authContext("Bearer " + signed)
	err = Auth(testSecret)(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
