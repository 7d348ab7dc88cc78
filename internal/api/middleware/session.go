package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

// RefreshCookieName is the cookie carrying the raw refresh token.
const RefreshCookieName = "Refresh"

// Session validates the refresh cookie against the stored token for the
// bearer subject and injects the resulting identity. Must run after Auth.
// The cookie value is a plain string, not a structured object.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid jwt token")
			}

			cookie, err := c.Cookie(RefreshCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid refresh token")
			}

			identity, err := auth.ValidateSession(c.Request().Context(), email, cookie.Value)
			if err != nil {
				return err
			}

			c.Set("session", identity)
			return next(c)
		}
	}
}
