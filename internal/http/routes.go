package http

import (
	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, h *Handler) {
	e.Validator = NewValidator()

	e.POST("/users", h.CreateUser)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)

	e.POST("/projects", h.CreateProject)
	e.GET("/projects", h.ListProjects)
	e.GET("/projects/:id", h.GetProject)
	e.PATCH("/projects/:id", h.UpdateProject)
	e.DELETE("/projects/:id", h.DeleteProject)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/project/:projectId", h.ListTasksByProject)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}
