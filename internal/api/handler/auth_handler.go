package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/api/metrics"
	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

// Cookie names set by the refresh endpoint.
const (
	accessCookieName  = "Access"
	refreshCookieName = "Refresh"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registrationRequest  true  "Registration details"
// @Success      201   {object}  domain.PublicUser
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/registration [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and issues a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh rotates the caller's token pair and delivers it via cookies.
// Cookies are only set on success.
//
// @Summary      Refresh tokens
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  refreshResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	pair, err := h.authService.Refresh(c.Request().Context(), email)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     accessCookieName,
		Value:    "Bearer " + pair.AccessToken,
		Path:     "/",
		HttpOnly: true,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    pair.RefreshToken,
		Path:     "/",
		HttpOnly: true,
	})

	metrics.TokenRefreshesTotal.Inc()
	return c.JSON(http.StatusOK, refreshResponse{Msg: "success"})
}

// PasswordChange verifies the old password and stores a new hash.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  passwordChangeRequest  true  "Old and new passwords"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/password-change [post]
func (h *AuthHandler) PasswordChange(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req passwordChangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Session returns the identity established by the refresh-cookie guard.
//
// @Summary      Current session identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SessionIdentity
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	identity, ok := c.Get("session").(*domain.SessionIdentity)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid refresh token")
	}
	return c.JSON(http.StatusOK, identity)
}
