package entity

// PerformanceSnapshot is a read-side projection over the current task set.
// It is recomputed on demand and never stored as the source of truth.
type PerformanceSnapshot struct {
	EmployeeID     string `json:"employee_id"`
	TasksAssigned  int    `json:"tasks_assigned"`
	TasksCompleted int    `json:"tasks_completed"`
	CompletionRate int    `json:"completion_rate"`
	Period         string `json:"period"`
}
