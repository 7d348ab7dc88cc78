package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type createDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

// updateDepartmentRequest carries the department id in the body, matching the
// update contract of the consuming frontend.
type updateDepartmentRequest struct {
	Name         string `json:"name"          validate:"required"`
	DepartmentID string `json:"department_id" validate:"required,uuid4"`
}

// List returns all departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Department
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Create adds a department. Admin only.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDepartmentRequest  true  "Department name"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	department, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// Update renames a department. Admin only.
//
// @Summary      Rename a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateDepartmentRequest  true  "Department id and new name"
// @Success      200   {object}  domain.Department
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /departments [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req updateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	department, err := h.service.Rename(c.Request().Context(), req.DepartmentID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Delete removes a department. Admin only.
//
// @Summary      Delete a department
// @Tags         departments
// @Security     BearerAuth
// @Param        id  path  string  true  "Department id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
