package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/event"
	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/repository"
)

// PropagationService keeps aggregate statuses consistent after assignment
// writes: assignment statuses roll up into the microtask, microtask statuses
// roll up into the task. Exactly two hops, each level written only when the
// computed value differs, so re-running is always safe.
//
// It has no caller to report to: every error is logged and swallowed at the
// subscriber boundary, and a failed run is recovered by the next change event
// or a manual Recompute.
type PropagationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPropagationService creates a PropagationService.
func NewPropagationService(repo *repository.Repository, logger *zap.Logger) *PropagationService {
	return &PropagationService{repo: repo, logger: logger}
}

// HandleStatusChange is the event subscriber entrypoint. Writes that did not
// change the status are a no-op, which also breaks any trigger loop.
func (s *PropagationService) HandleStatusChange(ctx context.Context, evt event.AssignmentStatusChanged) error {
	if evt.Before == evt.After {
		return nil
	}

	s.logger.Info("propagating assignment status change",
		zap.String("microtask_id", evt.MicrotaskID),
		zap.String("before", string(evt.Before)),
		zap.String("after", string(evt.After)),
	)

	if err := s.Recompute(ctx, evt.MicrotaskID); err != nil {
		s.logger.Error("status propagation failed",
			zap.String("microtask_id", evt.MicrotaskID),
			zap.Error(err),
		)
	}
	return nil
}

// Recompute re-derives the microtask status from its assignments and, when
// that changed, the parent task status from its microtasks. Idempotent: it
// only writes when the computed value differs from the stored one.
func (s *PropagationService) Recompute(ctx context.Context, microtaskID string) error {
	assignments, err := s.repo.Assignment.ListByMicrotask(ctx, microtaskID)
	if err != nil {
		return err
	}

	statuses := make([]model.Status, 0, len(assignments))
	for _, a := range assignments {
		statuses = append(statuses, a.Status)
	}

	candidate, ok := model.Aggregate(statuses, model.StatusAssigned)
	if !ok {
		s.logger.Warn("no assignments found for microtask", zap.String("microtask_id", microtaskID))
		return nil
	}

	mt, err := s.repo.Microtask.GetByID(ctx, microtaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Orphan assignments; nothing to propagate to.
			s.logger.Warn("microtask not found for propagation", zap.String("microtask_id", microtaskID))
			return nil
		}
		return err
	}

	if candidate == mt.Status {
		return nil
	}

	if err := s.repo.Microtask.UpdateStatus(ctx, microtaskID, candidate); err != nil {
		return err
	}

	s.logger.Info("microtask status updated",
		zap.String("microtask_id", microtaskID),
		zap.String("status", string(candidate)),
	)

	return s.recomputeTask(ctx, mt.TaskID)
}

// recomputeTask is the second and final hop: task status from microtasks.
func (s *PropagationService) recomputeTask(ctx context.Context, taskID string) error {
	microtasks, err := s.repo.Microtask.ListByTask(ctx, taskID)
	if err != nil {
		return err
	}

	statuses := make([]model.Status, 0, len(microtasks))
	for _, mt := range microtasks {
		statuses = append(statuses, mt.Status)
	}

	candidate, ok := model.Aggregate(statuses, model.StatusPending)
	if !ok {
		s.logger.Warn("no microtasks found for task", zap.String("task_id", taskID))
		return nil
	}

	task, err := s.repo.Task.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("task not found for propagation", zap.String("task_id", taskID))
			return nil
		}
		return err
	}

	if candidate == task.Status {
		return nil
	}

	if err := s.repo.Task.UpdateStatus(ctx, taskID, candidate); err != nil {
		return err
	}

	s.logger.Info("task status updated",
		zap.String("task_id", taskID),
		zap.String("status", string(candidate)),
	)

	return nil
}
