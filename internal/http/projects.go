package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateProject(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projectService.Create(
		c.Request().Context(),
		req.Name, req.Description, req.StartDate, req.EndDate,
	)
	if err != nil {
		return h.storageError(err, "create project")
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context())
	if err != nil {
		return h.storageError(err, "list projects")
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	project, err := h.projectService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.storageError(err, "get project")
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.projectService.Update(c.Request().Context(), c.Param("id"), req.Fields())
	if err != nil {
		return h.storageError(err, "update project")
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	if err := h.projectService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.storageError(err, "delete project")
	}
	return c.NoContent(http.StatusNoContent)
}
