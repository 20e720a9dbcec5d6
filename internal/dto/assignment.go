package dto

// UpdateAssignmentStatusRequest advances a volunteer's own assignment. The
// assignment is addressed by microtask id; the volunteer id comes from the
// caller identity.
type UpdateAssignmentStatusRequest struct {
	MicrotaskID string `json:"microtask_id" binding:"required"`
	Status      string `json:"status"       binding:"required"`
}

// AssignmentStatusResponse reports the applied transition.
type AssignmentStatusResponse struct {
	MicrotaskID string `json:"microtask_id"`
	Status      string `json:"status"`
}

// ── auto-assignment ──

// AutoAssignRequest triggers the planner for one task of an event.
type AutoAssignRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

// AssignedVolunteer is one selected volunteer with their compatibility score.
type AssignedVolunteer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// MicrotaskAssignment is the planner outcome for one microtask.
type MicrotaskAssignment struct {
	MicrotaskID        string              `json:"microtask_id"`
	MicrotaskTitle     string              `json:"microtask_title"`
	AssignedVolunteers []AssignedVolunteer `json:"assigned_volunteers"`
}

// AutoAssignResponse is the aggregate planner result. Microtasks with no
// eligible volunteer are skipped and do not count toward AssignedCount.
type AutoAssignResponse struct {
	AssignedCount int                   `json:"assigned_count"`
	Assignments   []MicrotaskAssignment `json:"assignments"`
}
