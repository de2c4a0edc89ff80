package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	repository "github.com/flowdesk/flowdesk/internal/repositories"
	"github.com/flowdesk/flowdesk/internal/services"
)

type Handler struct {
	userService    *services.UserService
	projectService *services.ProjectService
	taskService    *services.TaskService
	logger         *zap.Logger
}

func NewHandler(
	userService *services.UserService,
	projectService *services.ProjectService,
	taskService *services.TaskService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userService:    userService,
		projectService: projectService,
		taskService:    taskService,
		logger:         logger,
	}
}

// storageError maps a service failure to a response: a missed
// single-record read becomes 404, anything else is a generic 500 with
// the cause kept in the log.
func (h *Handler) storageError(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
	h.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "storage failure")
}
