package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/model"
)

// VolunteerProfileRepository reads volunteer enrollments.
type VolunteerProfileRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]model.VolunteerProfile, error)
}

type volunteerProfileRepo struct {
	db *gorm.DB
}

// NewVolunteerProfileRepo creates the GORM-backed VolunteerProfileRepository.
func NewVolunteerProfileRepo(db *gorm.DB) VolunteerProfileRepository {
	return &volunteerProfileRepo{db: db}
}

func (r *volunteerProfileRepo) ListByEvent(ctx context.Context, eventID string) ([]model.VolunteerProfile, error) {
	var profiles []model.VolunteerProfile
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("user_id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
