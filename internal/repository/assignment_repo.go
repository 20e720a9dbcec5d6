package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/model"
)

// AssignmentRepository reads and mutates volunteer↔microtask assignments.
// CommitPlan is the atomic multi-document commit used by the planner: every
// write in the plan takes effect or none does.
type AssignmentRepository interface {
	GetByMicrotaskAndUser(ctx context.Context, microtaskID, userID string) (*model.Assignment, error)
	ListByMicrotask(ctx context.Context, microtaskID string) ([]model.Assignment, error)
	ListActiveByUser(ctx context.Context, userID string) ([]model.Assignment, error)
	ListActiveByEvent(ctx context.Context, eventID string) ([]model.Assignment, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Assignment, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) error
	CommitPlan(ctx context.Context, microtasks []*model.Microtask, assignments []*model.Assignment) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates the GORM-backed AssignmentRepository.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) GetByMicrotaskAndUser(ctx context.Context, microtaskID, userID string) (*model.Assignment, error) {
	var a model.Assignment
	err := r.db.WithContext(ctx).
		Where("microtask_id = ? AND user_id = ?", microtaskID, userID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) ListByMicrotask(ctx context.Context, microtaskID string) ([]model.Assignment, error) {
	var as []model.Assignment
	err := r.db.WithContext(ctx).
		Where("microtask_id = ?", microtaskID).
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *assignmentRepo) ListActiveByUser(ctx context.Context, userID string) ([]model.Assignment, error) {
	var as []model.Assignment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []model.Status{model.StatusAssigned, model.StatusInProgress}).
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *assignmentRepo) ListActiveByEvent(ctx context.Context, eventID string) ([]model.Assignment, error) {
	var as []model.Assignment
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status IN ?", eventID, []model.Status{model.StatusAssigned, model.StatusInProgress}).
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *assignmentRepo) ListByEvent(ctx context.Context, eventID string) ([]model.Assignment, error) {
	var as []model.Assignment
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("assigned_at ASC").
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *assignmentRepo) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	return r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("assignment_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *assignmentRepo) CommitPlan(ctx context.Context, microtasks []*model.Microtask, assignments []*model.Assignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, mt := range microtasks {
			err := tx.Model(&model.Microtask{}).
				Where("microtask_id = ?", mt.MicrotaskID).
				Updates(map[string]interface{}{
					"assigned_to": mt.AssignedTo,
					"status":      mt.Status,
					"assigned_at": now,
					"updated_at":  now,
				}).Error
			if err != nil {
				return err
			}
		}
		for _, a := range assignments {
			if err := tx.Create(a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
