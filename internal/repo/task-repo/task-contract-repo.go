package task_repo

import (
	"context"
	"time"

	"github.com/rouasschnibir-dot/pfe/internal/abstraction/tx"
	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type TaskRepoContract interface {
	GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError)
	ListAll(ctx context.Context, filter *task_dto.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError)
	ListByAssignee(ctx context.Context, assigneeID string) ([]entity.TaskEntity, *app_errors.AppError)
	ListByProject(ctx context.Context, projectID string) ([]entity.TaskEntity, *app_errors.AppError)
	ListPendingReview(ctx context.Context, managerID string) ([]entity.TaskEntity, *app_errors.AppError)
	ListDueSoon(ctx context.Context, within time.Duration) ([]entity.ReminderTask, *app_errors.AppError)
	InsertNewTask(ctx context.Context, task *entity.TaskEntity) *app_errors.AppError
	SetExecutionStatus(ctx context.Context, t tx.Tx, taskID string, status entity.TaskStatus) (*entity.TaskEntity, *app_errors.AppError)
	SetValidation(ctx context.Context, t tx.Tx, taskID string, decision entity.ReviewDecision) (*entity.TaskEntity, *app_errors.AppError)
}
