package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Email        string `json:"email"         validate:"omitempty,email"`
	DepartmentID string `json:"department_id" validate:"omitempty,uuid4"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin employee"`
}

// List returns all users with their profiles.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PublicUser
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Search finds users by first or last name, case-insensitively.
//
// @Summary      Search users by name
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        name  query     string  true  "Name fragment"
// @Success      200   {array}   domain.PublicUser
// @Failure      400   {object}  errorResponse
// @Router       /users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "name is required"})
	}

	users, err := h.service.Search(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.PublicUser
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update changes a user's email and department.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.PublicUser
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UserUpdate{
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateRole assigns a role to a user. Admin only.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateRoleRequest  true  "New role"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.UpdateRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a user. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
