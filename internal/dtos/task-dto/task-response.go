package task_dto

import (
	"time"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
)

type TaskResponse struct {
	TaskID           string     `json:"task_id"`
	ProjectID        string     `json:"project_id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	Status           string     `json:"status"`
	ValidationStatus string     `json:"validation_status"`
	Priority         string     `json:"priority"`
	AssigneeID       string     `json:"assignee_id"`
	CreatedBy        string     `json:"created_by"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	Locked           bool       `json:"locked"`
}

// FromTaskEntity maps a task row into the wire shape. Locked is derived at
// response-build time per the review grace window rule.
func FromTaskEntity(t *entity.TaskEntity, now time.Time) *TaskResponse {
	return &TaskResponse{
		TaskID:           t.ID,
		ProjectID:        t.ProjectID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           string(t.Status),
		ValidationStatus: string(t.ValidationStatus),
		Priority:         string(t.Priority),
		AssigneeID:       t.AssigneeID,
		CreatedBy:        t.CreatedBy,
		Deadline:         t.Deadline,
		CompletedAt:      t.CompletedAt,
		CreatedAt:        t.CreatedAt,
		Locked:           t.LockedAt(now),
	}
}

type DecideResponse struct {
	TaskID           string  `json:"task_id"`
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	ValidationStatus string  `json:"validation_status"`
	Decision         string  `json:"decision"`
	Feedback         *string `json:"feedback,omitempty"`
}
