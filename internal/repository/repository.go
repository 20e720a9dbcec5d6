package repository

import "gorm.io/gorm"

// Repository aggregates all entity repositories. Injected into services so
// they stay independently testable against in-memory fakes.
type Repository struct {
	Event      EventRepository
	Task       TaskRepository
	Microtask  MicrotaskRepository
	Assignment AssignmentRepository
	Volunteer  VolunteerProfileRepository
}

// NewRepository wires the GORM-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Event:      NewEventRepo(db),
		Task:       NewTaskRepo(db),
		Microtask:  NewMicrotaskRepo(db),
		Assignment: NewAssignmentRepo(db),
		Volunteer:  NewVolunteerProfileRepo(db),
	}
}
