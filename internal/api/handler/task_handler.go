package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nandoripardo888/TO--DO/internal/dto"
	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/service"
	"github.com/nandoripardo888/TO--DO/pkg/response"
)

// TaskHandler serves direct task commands and statistics.
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// UpdateStatus updates a task's status.
// PUT /api/v1/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "task id required")
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "required parameters: status")
		return
	}

	result, err := h.taskSvc.UpdateStatus(c.Request.Context(), id, model.Status(req.Status))
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, result)
}

// GetStatistics returns microtask counts per status.
// GET /api/v1/tasks/:id/statistics
func (h *TaskHandler) GetStatistics(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "task id required")
		return
	}

	stats, err := h.taskSvc.GetStatistics(c.Request.Context(), id)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, stats)
}

func (h *TaskHandler) handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, service.ErrInvalidTaskStatus):
		response.BadRequest(c, 20002, err.Error())
	case errors.Is(err, service.ErrTaskStatusRegression):
		response.Conflict(c, 20003, err.Error())
	default:
		response.InternalError(c)
	}
}
