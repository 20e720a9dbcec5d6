package service

import (
	"go.uber.org/zap"

	"github.com/nandoripardo888/TO--DO/internal/event"
	"github.com/nandoripardo888/TO--DO/internal/repository"
	"github.com/nandoripardo888/TO--DO/pkg/redis"
)

// Service aggregates all services.
type Service struct {
	Task       TaskService
	Assignment AssignmentService
	Planner    PlannerService
	Export     ExportService
}

// NewService wires the services and subscribes the propagation pipeline to
// assignment status changes.
func NewService(
	repo *repository.Repository,
	bus *event.Bus,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	propagation := NewPropagationService(repo, logger)
	bus.SubscribeAssignmentStatusChanged("status_propagation", propagation.HandleStatusChange)

	return &Service{
		Task:       NewTaskService(repo, cache, logger),
		Assignment: NewAssignmentService(repo, bus, logger),
		Planner:    NewPlannerService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
