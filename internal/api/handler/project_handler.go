package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	MemberIDs   []string `json:"member_ids"  validate:"omitempty,dive,uuid4"`
}

type assignMembersRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,dive,uuid4"`
}

// List returns all projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns one project by id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create adds a project with an optional initial member set. Admin only.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   req.MemberIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// AssignMembers adds users to a project. Admin only.
//
// @Summary      Assign users to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      assignMembersRequest  true  "User ids to assign"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id}/users [post]
func (h *ProjectHandler) AssignMembers(c echo.Context) error {
	var req assignMembersRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.AssignMembers(c.Request().Context(), c.Param("id"), req.UserIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
