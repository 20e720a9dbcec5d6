package handler

import "github.com/nandoripardo888/TO--DO/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Task       *TaskHandler
	Assignment *AssignmentHandler
	Export     *ExportHandler
}

// NewHandler wires the handlers.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Task:       NewTaskHandler(svc.Task),
		Assignment: NewAssignmentHandler(svc.Assignment, svc.Planner),
		Export:     NewExportHandler(svc.Export),
	}
}
