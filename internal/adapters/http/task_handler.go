package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskdesk/core/internal/domain/entities"
	"github.com/taskdesk/core/internal/infrastructure/logger"
	"github.com/taskdesk/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks handles GET /tasks, returning tasks grouped by due-date label
func (h *TaskHandler) ListTasks(c echo.Context) error {
	requester, ok := requesterFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	groups, err := h.taskService.ListTasksByDate(c.Request().Context(), requester)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err, "user_id", requester.ID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, TasksByDateResponse{Success: true, TasksByDate: groups})
}

// CreateTask handles POST /tasks with form fields title, description, dueDate
func (h *TaskHandler) CreateTask(c echo.Context) error {
	requester, ok := requesterFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	req := ports.CreateTaskRequest{
		Title: c.FormValue("title"),
	}

	if description := c.FormValue("description"); description != "" {
		req.Description = &description
	}

	if dueDateStr := c.FormValue("dueDate"); dueDateStr != "" {
		dueDate, err := time.ParseInLocation("2006-01-02", dueDateStr, time.Local)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid due date"})
		}
		req.DueDate = &dueDate
	}

	_, err := h.taskService.CreateTask(c.Request().Context(), requester, req)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyTitle) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Title is required"})
		}
		h.logger.Error("Create task failed", "error", err, "user_id", requester.ID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create task"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ToggleRequest carries the target completion state
type ToggleRequest struct {
	Completed bool `json:"completed"`
}

// ToggleTask handles POST /tasks/:id/toggle
func (h *TaskHandler) ToggleTask(c echo.Context) error {
	requester, ok := requesterFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}

	err := h.taskService.ToggleCompletion(c.Request().Context(), requester, c.Param("id"), req.Completed)
	if err != nil {
		// Not-found and policy denials share one response so callers cannot
		// probe for the existence of other users' tasks.
		if errors.Is(err, entities.ErrTaskNotFound) || errors.Is(err, entities.ErrUnauthorized) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to update task"})
		}
		h.logger.Error("Toggle task failed", "error", err, "task_id", c.Param("id"), "user_id", requester.ID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ReorderRequest carries the new manual order
type ReorderRequest struct {
	Order int `json:"order"`
}

// ReorderTask handles POST /tasks/:id/reorder
func (h *TaskHandler) ReorderTask(c echo.Context) error {
	requester, ok := requesterFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}

	err := h.taskService.Reorder(c.Request().Context(), requester, c.Param("id"), req.Order)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) || errors.Is(err, entities.ErrUnauthorized) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to update task order"})
		}
		h.logger.Error("Reorder task failed", "error", err, "task_id", c.Param("id"), "user_id", requester.ID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
