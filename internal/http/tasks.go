package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowdesk/flowdesk/internal/models"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(
		c.Request().Context(),
		req.Title, req.Description,
		models.TaskStatus(req.Status),
		req.Deadline, req.ProjectID, req.UserID,
	)
	if err != nil {
		return h.storageError(err, "create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.List(c.Request().Context())
	if err != nil {
		return h.storageError(err, "list tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.storageError(err, "get task")
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasksByProject(c echo.Context) error {
	tasks, err := h.taskService.FindByProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return h.storageError(err, "list tasks by project")
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), c.Param("id"), req.Fields())
	if err != nil {
		return h.storageError(err, "update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.storageError(err, "delete task")
	}
	return c.NoContent(http.StatusNoContent)
}
