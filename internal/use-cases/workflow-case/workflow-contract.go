package workflow_case

import (
	"context"

	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type WorkflowServiceContract interface {
	CreateTask(ctx context.Context, creatorID, projectID string, req *task_dto.CreateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	GetTask(ctx context.Context, taskID string) (*task_dto.TaskResponse, *app_errors.AppError)
	ListAll(ctx context.Context, filter *task_dto.TaskListFilter) ([]*task_dto.TaskResponse, *app_errors.AppError)
	ListByAssignee(ctx context.Context, assigneeID string) ([]*task_dto.TaskResponse, *app_errors.AppError)
	ListByProject(ctx context.Context, projectID string) ([]*task_dto.TaskResponse, *app_errors.AppError)
	SubmitExecutionUpdate(ctx context.Context, callerID, taskID string, req *task_dto.UpdateStatusRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	Decide(ctx context.Context, managerID, taskID string, req *task_dto.DecideRequest) (*task_dto.DecideResponse, *app_errors.AppError)
	PendingForManager(ctx context.Context, managerID string) ([]*task_dto.TaskResponse, *app_errors.AppError)
}
