package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both email and uid must
// be present, which proves the middleware ran and the token carried the
// canonical claims set.
func ctxIdentity(c echo.Context) (email, userID string, err error) {
	email, _ = c.Get("email").(string)
	userID, _ = c.Get("uid").(string)
	if email == "" || userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, userID, nil
}
