package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/dto"
	"github.com/nandoripardo888/TO--DO/internal/event"
	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/repository"
)

// ── assignment module errors ──

var (
	ErrAssignmentNotFound         = errors.New("assignment not found for this volunteer and microtask")
	ErrInvalidAssignmentStatus    = errors.New("invalid assignment status")
	ErrAssignmentStatusRegression = errors.New("assignment status regression not allowed")
)

// ChangePublisher publishes assignment status changes for the propagation
// pipeline. Satisfied by *event.Bus.
type ChangePublisher interface {
	PublishAssignmentStatusChanged(evt event.AssignmentStatusChanged) error
}

// AssignmentService handles a volunteer's own progress updates.
type AssignmentService interface {
	// UpdateStatus advances the caller's assignment on a microtask.
	UpdateStatus(ctx context.Context, microtaskID, volunteerID string, newStatus model.Status) (*dto.AssignmentStatusResponse, error)
}

type assignmentService struct {
	repo      *repository.Repository
	publisher ChangePublisher
	logger    *zap.Logger
}

// NewAssignmentService creates an AssignmentService.
func NewAssignmentService(repo *repository.Repository, publisher ChangePublisher, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, publisher: publisher, logger: logger}
}

func (s *assignmentService) UpdateStatus(ctx context.Context, microtaskID, volunteerID string, newStatus model.Status) (*dto.AssignmentStatusResponse, error) {
	newRank, ok := model.AssignmentStatusRank(newStatus)
	if !ok {
		return nil, ErrInvalidAssignmentStatus
	}

	assignment, err := s.repo.Assignment.GetByMicrotaskAndUser(ctx, microtaskID, volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("load assignment failed",
			zap.String("microtask_id", microtaskID),
			zap.String("user_id", volunteerID),
			zap.Error(err),
		)
		return nil, err
	}

	currentRank, _ := model.AssignmentStatusRank(assignment.Status)
	if newRank < currentRank {
		return nil, ErrAssignmentStatusRegression
	}

	if err := s.repo.Assignment.UpdateStatus(ctx, assignment.AssignmentID, newStatus); err != nil {
		s.logger.Error("update assignment status failed",
			zap.String("assignment_id", assignment.AssignmentID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("assignment status updated",
		zap.String("microtask_id", microtaskID),
		zap.String("user_id", volunteerID),
		zap.String("status", string(newStatus)),
	)

	// Propagation reacts asynchronously; a publish failure must not fail the
	// command, re-running propagation later converges to the same state.
	if s.publisher != nil {
		err := s.publisher.PublishAssignmentStatusChanged(event.AssignmentStatusChanged{
			AssignmentID: assignment.AssignmentID,
			MicrotaskID:  assignment.MicrotaskID,
			TaskID:       assignment.TaskID,
			EventID:      assignment.EventID,
			Before:       assignment.Status,
			After:        newStatus,
		})
		if err != nil {
			s.logger.Warn("publish status change failed",
				zap.String("assignment_id", assignment.AssignmentID),
				zap.Error(err),
			)
		}
	}

	return &dto.AssignmentStatusResponse{MicrotaskID: microtaskID, Status: string(newStatus)}, nil
}
