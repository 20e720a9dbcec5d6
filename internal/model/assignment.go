package model

import "time"

// Assignment links one volunteer to one microtask and carries its own
// progress status. The task/event ids are denormalized from the microtask at
// creation time. Status never regresses.
type Assignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey"                         json:"assignment_id"`
	UserID       string    `gorm:"type:varchar(128);not null;index"             json:"user_id"`
	MicrotaskID  string    `gorm:"type:uuid;not null;index"                     json:"microtask_id"`
	TaskID       string    `gorm:"type:uuid;not null"                           json:"task_id"`
	EventID      string    `gorm:"type:uuid;not null"                           json:"event_id"`
	Status       Status    `gorm:"type:varchar(20);not null;default:'assigned'" json:"status"`
	AssignedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"           json:"assigned_at"`
	BaseModel
}

// TableName sets the table name (historically "user_microtasks").
func (Assignment) TableName() string { return "user_microtasks" }

// IsActive reports whether the assignment still occupies the volunteer's
// schedule (assigned or in progress).
func (a *Assignment) IsActive() bool {
	return a.Status == StatusAssigned || a.Status == StatusInProgress
}
