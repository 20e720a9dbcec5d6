package model

// VolunteerProfile is a volunteer's enrollment in an event, with the skills,
// resources and availability used by the auto-assignment engine. Read-only
// input for this service.
//
// AvailableDays holds full Portuguese weekday names ("segunda-feira", ...)
// to match the values recorded by the enrollment flow. AvailableHours* are
// "HH:MM" 24h strings; both empty means no hour restriction.
type VolunteerProfile struct {
	ProfileID           string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"profile_id"`
	UserID              string      `gorm:"type:varchar(128);not null"                     json:"user_id"`
	EventID             string      `gorm:"type:uuid;not null;index"                       json:"event_id"`
	UserName            string      `gorm:"type:varchar(100);not null"                     json:"user_name"`
	Skills              StringArray `gorm:"type:text[];not null;default:'{}'"              json:"skills"`
	Resources           StringArray `gorm:"type:text[];not null;default:'{}'"              json:"resources"`
	IsFullTimeAvailable bool        `gorm:"not null;default:false"                         json:"is_full_time_available"`
	AvailableDays       StringArray `gorm:"type:text[];not null;default:'{}'"              json:"available_days"`
	AvailableHoursStart string      `gorm:"type:varchar(5)"                                json:"available_hours_start,omitempty"`
	AvailableHoursEnd   string      `gorm:"type:varchar(5)"                                json:"available_hours_end,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (VolunteerProfile) TableName() string { return "volunteer_profiles" }
