package entity

import "time"

// ReviewGraceWindow is how long after completion an assignee may still touch a
// task that is waiting for its manager's decision. Past this window the task
// counts as locked until the review lands.
const ReviewGraceWindow = 10 * time.Minute

type TaskEntity struct {
	ID               string           `json:"id"`
	ProjectID        string           `json:"project_id"`
	ProjectTitle     *string          `json:"project_title,omitempty"`
	Title            string           `json:"title"`
	Description      *string          `json:"description,omitempty"`
	Status           TaskStatus       `json:"status"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	Priority         TaskPriority     `json:"priority"`
	AssigneeID       string           `json:"assignee_id"`
	CreatedBy        string           `json:"created_by"`
	Deadline         *time.Time       `json:"deadline,omitempty"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

// AwaitingReview reports whether the task sits in the (Completed, Pending)
// state, i.e. it has been submitted and no decision has been recorded yet.
func (t *TaskEntity) AwaitingReview() bool {
	return t.Status == TaskCompleted && t.ValidationStatus == ValidationPending
}

// LockedAt reports whether execution-status changes are rejected at the given
// instant. A validated task is locked for good; a task awaiting review locks
// once the grace window after completion has elapsed. Derived state only,
// nothing is stored and no timer runs.
func (t *TaskEntity) LockedAt(now time.Time) bool {
	if t.ValidationStatus == ValidationValidated {
		return true
	}
	if t.AwaitingReview() && t.CompletedAt != nil {
		return now.Sub(*t.CompletedAt) > ReviewGraceWindow
	}
	return false
}

// ReminderTask is the projection the deadline-reminder job works on.
type ReminderTask struct {
	ID            string       `json:"id"`
	ProjectID     string       `json:"project_id"`
	ProjectTitle  string       `json:"project_title"`
	Title         string       `json:"title"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	AssigneeID    string       `json:"assignee_id"`
	AssigneeEmail string       `json:"assignee_email"`
	Deadline      time.Time    `json:"deadline"`
}

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not_Started"
	TaskInProgress TaskStatus = "In_Progress"
	TaskOnHold     TaskStatus = "On_Hold"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskOnHold, TaskCompleted:
		return true
	}
	return false
}

type ValidationStatus string

const (
	ValidationNone      ValidationStatus = "None"
	ValidationPending   ValidationStatus = "Pending"
	ValidationValidated ValidationStatus = "Validated"
	ValidationRejected  ValidationStatus = "Rejected"
)

func (s ValidationStatus) IsValid() bool {
	switch s {
	case ValidationNone, ValidationPending, ValidationValidated, ValidationRejected:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank gives the ordinal weight used for display sorting, Critical first.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

func (d ReviewDecision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject:
		return true
	}
	return false
}
