package model

import "time"

// Microtask is an atomic unit of work with its own schedule, skill and
// resource requirements and a volunteer capacity. Start/end may be null for
// untimed work; such microtasks never cause schedule conflicts.
type Microtask struct {
	MicrotaskID       string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"microtask_id"`
	TaskID            string      `gorm:"type:uuid;not null;index"                       json:"task_id"`
	EventID           string      `gorm:"type:uuid;not null"                             json:"event_id"`
	Title             string      `gorm:"type:varchar(200);not null"                     json:"title"`
	Status            Status      `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	RequiredSkills    StringArray `gorm:"type:text[];not null;default:'{}'"              json:"required_skills"`
	RequiredResources StringArray `gorm:"type:text[];not null;default:'{}'"              json:"required_resources"`
	MaxVolunteers     int         `gorm:"not null;default:1"                             json:"max_volunteers"`
	StartDateTime     *time.Time  `gorm:"type:timestamptz"                               json:"start_date_time,omitempty"`
	EndDateTime       *time.Time  `gorm:"type:timestamptz"                               json:"end_date_time,omitempty"`
	AssignedTo        StringArray `gorm:"type:text[];not null;default:'{}'"              json:"assigned_to"`
	AssignedAt        *time.Time  `gorm:"type:timestamptz"                               json:"assigned_at,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Microtask) TableName() string { return "microtasks" }

// Capacity returns the effective volunteer capacity (defaults to 1).
func (m *Microtask) Capacity() int {
	if m.MaxVolunteers <= 0 {
		return 1
	}
	return m.MaxVolunteers
}
