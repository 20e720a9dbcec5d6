package model

// Status is the lifecycle state of a task, microtask or assignment.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Per-entity orderings. Rank lookup doubles as enum validation: a status
// absent from the map is invalid for that entity.
var (
	taskStatusOrder = map[Status]int{
		StatusPending:    0,
		StatusInProgress: 1,
		StatusCompleted:  2,
	}
	assignmentStatusOrder = map[Status]int{
		StatusAssigned:   0,
		StatusInProgress: 1,
		StatusCompleted:  2,
	}
)

// TaskStatusRank returns the ordering rank of a task status.
func TaskStatusRank(s Status) (int, bool) {
	r, ok := taskStatusOrder[s]
	return r, ok
}

// AssignmentStatusRank returns the ordering rank of an assignment status.
func AssignmentStatusRank(s Status) (int, bool) {
	r, ok := assignmentStatusOrder[s]
	return r, ok
}

// Aggregate derives a parent status from the multiset of its children's
// statuses. level0 is the parent's idle status: StatusPending for the
// microtask→task rollup, StatusAssigned for the assignment→microtask rollup.
//
// Precedence:
//  1. empty child set → no change (ok=false, caller keeps current status)
//  2. every child completed → completed
//  3. any child in_progress or completed → in_progress
//  4. otherwise → level0
func Aggregate(children []Status, level0 Status) (Status, bool) {
	if len(children) == 0 {
		return "", false
	}

	allCompleted := true
	anyStarted := false
	for _, s := range children {
		if s != StatusCompleted {
			allCompleted = false
		}
		if s == StatusInProgress || s == StatusCompleted {
			anyStarted = true
		}
	}

	switch {
	case allCompleted:
		return StatusCompleted, true
	case anyStarted:
		return StatusInProgress, true
	default:
		return level0, true
	}
}
