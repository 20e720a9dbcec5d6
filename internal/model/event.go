package model

// Event is a volunteer campaign. Events are created and managed by an
// external surface; this service only reads them for authorization and
// reporting.
type Event struct {
	EventID  string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Title    string      `gorm:"type:varchar(200);not null"                     json:"title"`
	Managers StringArray `gorm:"type:text[];not null;default:'{}'"              json:"managers"`
	BaseModel
}

// TableName sets the table name.
func (Event) TableName() string { return "events" }

// IsManager reports whether the given user manages this event.
func (e *Event) IsManager(userID string) bool {
	return e.Managers.Contains(userID)
}
