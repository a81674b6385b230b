package task_dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	AssigneeID  string     `json:"assignee_id" validate:"required"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,taskStatus"`
}

type DecideRequest struct {
	Decision string  `json:"decision" validate:"required,reviewDecision"`
	Feedback *string `json:"feedback,omitempty" validate:"omitempty,min=3"`
}

type TaskListFilter struct {
	Status     *string `query:"status,omitempty" validate:"omitempty,taskStatus"`
	AssigneeID *string `query:"assignee_id,omitempty"`
	ProjectID  *string `query:"project_id,omitempty" validate:"omitempty,uuid"`
	Page       int     `query:"page" validate:"omitempty,min=1"`
	Limit      int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

type ParamProjectID struct {
	ID string `params:"project_id" validate:"required,uuid"`
}

type ParamTaskID struct {
	ID string `params:"task_id" validate:"required,uuid"`
}

func IsValidTaskStatus(fl validator.FieldLevel) bool {
	return entity.TaskStatus(fl.Field().String()).IsValid()
}

func IsValidTaskPriority(fl validator.FieldLevel) bool {
	return entity.TaskPriority(fl.Field().String()).IsValid()
}

func IsValidReviewDecision(fl validator.FieldLevel) bool {
	return entity.ReviewDecision(fl.Field().String()).IsValid()
}
