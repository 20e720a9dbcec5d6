package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/model"
)

// EventRepository reads campaign events.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo creates the GORM-backed EventRepository.
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}
