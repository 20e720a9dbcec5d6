package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nandoripardo888/TO--DO/internal/dto"
	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/service"
	"github.com/nandoripardo888/TO--DO/pkg/response"
)

// AssignmentHandler serves volunteer progress updates and auto-assignment.
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
	plannerSvc    service.PlannerService
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(assignmentSvc service.AssignmentService, plannerSvc service.PlannerService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc, plannerSvc: plannerSvc}
}

// UpdateStatus advances the caller's assignment on a microtask.
// PUT /api/v1/assignments/status
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAssignmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "required parameters: microtask_id, status")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.assignmentSvc.UpdateStatus(c.Request.Context(), req.MicrotaskID, callerID, model.Status(req.Status))
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, result)
}

// AutoAssign runs the volunteer auto-assignment planner for a task.
// POST /api/v1/tasks/:id/auto-assign
func (h *AssignmentHandler) AutoAssign(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		response.BadRequest(c, 10001, "task id required")
		return
	}

	var req dto.AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "required parameters: event_id")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.plannerSvc.AutoAssign(c.Request.Context(), req.EventID, taskID, callerID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, 30001, err.Error())
	case errors.Is(err, service.ErrInvalidAssignmentStatus),
		errors.Is(err, service.ErrTaskNotInEvent):
		response.BadRequest(c, 30002, err.Error())
	case errors.Is(err, service.ErrAssignmentStatusRegression):
		response.Conflict(c, 30003, err.Error())
	case errors.Is(err, service.ErrNotEventManager):
		response.Forbidden(c, 30004, err.Error())
	case errors.Is(err, service.ErrNoVolunteers):
		response.UnprocessableEntity(c, 30005, err.Error())
	default:
		response.InternalError(c)
	}
}
