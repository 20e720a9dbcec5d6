package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/model"
)

// MicrotaskRepository reads and mutates microtasks.
type MicrotaskRepository interface {
	GetByID(ctx context.Context, id string) (*model.Microtask, error)
	ListByTask(ctx context.Context, taskID string) ([]model.Microtask, error)
	ListPendingByTask(ctx context.Context, taskID string) ([]model.Microtask, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) error
}

type microtaskRepo struct {
	db *gorm.DB
}

// NewMicrotaskRepo creates the GORM-backed MicrotaskRepository.
func NewMicrotaskRepo(db *gorm.DB) MicrotaskRepository {
	return &microtaskRepo{db: db}
}

func (r *microtaskRepo) GetByID(ctx context.Context, id string) (*model.Microtask, error) {
	var mt model.Microtask
	err := r.db.WithContext(ctx).
		Where("microtask_id = ?", id).
		First(&mt).Error
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

func (r *microtaskRepo) ListByTask(ctx context.Context, taskID string) ([]model.Microtask, error) {
	var mts []model.Microtask
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Find(&mts).Error
	if err != nil {
		return nil, err
	}
	return mts, nil
}

func (r *microtaskRepo) ListPendingByTask(ctx context.Context, taskID string) ([]model.Microtask, error) {
	var mts []model.Microtask
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND status = ?", taskID, model.StatusPending).
		Order("created_at ASC").
		Find(&mts).Error
	if err != nil {
		return nil, err
	}
	return mts, nil
}

func (r *microtaskRepo) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	return r.db.WithContext(ctx).
		Model(&model.Microtask{}).
		Where("microtask_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
