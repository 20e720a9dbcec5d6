package model

// Task is a top-level unit of volunteer work within an event, composed of
// microtasks. Its status is an aggregate of its microtasks' statuses, written
// only by the propagation pipeline or a direct manager command.
type Task struct {
	TaskID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	EventID string `gorm:"type:uuid;not null;index"                       json:"event_id"`
	Title   string `gorm:"type:varchar(200);not null"                     json:"title"`
	Status  Status `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel
}

// TableName sets the table name.
func (Task) TableName() string { return "tasks" }
