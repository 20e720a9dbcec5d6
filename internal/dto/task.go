package dto

// UpdateTaskStatusRequest updates a task's status directly (manager command).
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskStatusResponse reports the applied transition.
type TaskStatusResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskStatisticsResponse counts a task's microtasks per status.
type TaskStatisticsResponse struct {
	TaskID     string `json:"task_id"`
	Total      int    `json:"total"`
	Pending    int    `json:"pending"`
	Assigned   int    `json:"assigned"`
	InProgress int    `json:"in_progress"`
	Completed  int    `json:"completed"`
}
