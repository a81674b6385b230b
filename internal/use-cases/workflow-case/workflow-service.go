package workflow_case

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rouasschnibir-dot/pfe/internal/abstraction/cache"
	"github.com/rouasschnibir-dot/pfe/internal/abstraction/tx"
	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/rouasschnibir-dot/pfe/internal/queue"
	notification_repo "github.com/rouasschnibir-dot/pfe/internal/repo/notification-repo"
	project_repo "github.com/rouasschnibir-dot/pfe/internal/repo/project-repo"
	task_repo "github.com/rouasschnibir-dot/pfe/internal/repo/task-repo"
	worker_task "github.com/rouasschnibir-dot/pfe/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

// WorkflowService is the single writer for task state. Every transition runs
// through here so the execution/validation invariants hold no matter which
// edge (HTTP handler, worker, test) asks for the change.
type WorkflowService struct {
	repo          task_repo.TaskRepoContract
	projects      project_repo.ProjectRepoContract
	notifications notification_repo.NotificationRepoContract
	queue         queue.NotifyQueueContract
	cache         cache.Cache
	txManager     tx.TxManager
}

func NewWorkflowService(db *pgxpool.Pool, redis *redis.Client, q queue.NotifyQueueContract) WorkflowServiceContract {
	return &WorkflowService{
		repo:          task_repo.NewTaskRepo(db),
		projects:      project_repo.NewProjectRepo(db),
		notifications: notification_repo.NewNotificationRepo(db),
		queue:         q,
		cache:         cache.NewRedisCache(redis),
		txManager:     tx.NewPgxTxManager(db),
	}
}

func (s *WorkflowService) CreateTask(ctx context.Context, creatorID, projectID string, req *task_dto.CreateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	// Creating against a dead project id is a caller bug, surface it as 404.
	if _, err := s.projects.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	priority := entity.PriorityMedium
	if req.Priority != nil {
		priority = entity.TaskPriority(*req.Priority)
	}

	taskID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	task := &entity.TaskEntity{
		ID:               taskID.String(),
		ProjectID:        projectID,
		Title:            req.Title,
		Description:      req.Description,
		Status:           entity.TaskNotStarted,
		ValidationStatus: entity.ValidationNone,
		Priority:         priority,
		AssigneeID:       req.AssigneeID,
		CreatedBy:        creatorID,
		Deadline:         req.Deadline,
		CreatedAt:        time.Now(),
	}

	if err := s.repo.InsertNewTask(ctx, task); err != nil {
		return nil, err
	}

	s.notifyUser(ctx, task.AssigneeID, fmt.Sprintf("New task assigned: %s", task.Title), entity.NotificationInfo)
	s.invalidatePerformance(ctx, task.AssigneeID)

	return task_dto.FromTaskEntity(task, time.Now()), nil
}

func (s *WorkflowService) GetTask(ctx context.Context, taskID string) (*task_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return task_dto.FromTaskEntity(task, time.Now()), nil
}

func (s *WorkflowService) ListAll(ctx context.Context, filter *task_dto.TaskListFilter) ([]*task_dto.TaskResponse, *app_errors.AppError) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	tasks, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

func (s *WorkflowService) ListByAssignee(ctx context.Context, assigneeID string) ([]*task_dto.TaskResponse, *app_errors.AppError) {
	tasks, err := s.repo.ListByAssignee(ctx, assigneeID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

func (s *WorkflowService) ListByProject(ctx context.Context, projectID string) ([]*task_dto.TaskResponse, *app_errors.AppError) {
	if _, err := s.projects.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// SubmitExecutionUpdate moves a task along its execution lifecycle on behalf
// of its assignee. A validated task never moves again; a task sitting past
// the review grace window is locked until the manager decides.
func (s *WorkflowService) SubmitExecutionUpdate(ctx context.Context, callerID, taskID string, req *task_dto.UpdateStatusRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.AssigneeID != callerID {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden.not_task_assignee", nil)
	}

	if task.LockedAt(time.Now()) {
		return nil, app_errors.NewTaskLockedError(string(task.Status), string(task.ValidationStatus))
	}

	txn, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}

	// The repo re-checks the guards inside the UPDATE, so a concurrent
	// validation between our read and this write still loses cleanly.
	updated, err := s.repo.SetExecutionStatus(ctx, txn, taskID, entity.TaskStatus(req.Status))
	if err != nil {
		txn.Rollback(ctx)
		return nil, err
	}

	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	if updated.Status == entity.TaskCompleted {
		if project, prjErr := s.projects.GetProjectByID(ctx, updated.ProjectID); prjErr == nil {
			s.notifyUser(ctx, project.ManagerID, fmt.Sprintf("Task \"%s\" was completed and awaits your review.", updated.Title), entity.NotificationInfo)
		} else {
			log.Warn().Str("task_id", taskID).Msg("Could not resolve project manager for review notification")
		}
	}

	s.invalidatePerformance(ctx, updated.AssigneeID)

	return task_dto.FromTaskEntity(updated, time.Now()), nil
}

// Decide records the manager's verdict on a task awaiting review. Approval is
// terminal; rejection reopens the task for rework and carries the feedback to
// the assignee.
func (s *WorkflowService) Decide(ctx context.Context, managerID, taskID string, req *task_dto.DecideRequest) (*task_dto.DecideResponse, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	isManager, err := s.projects.CheckProjectManager(ctx, task.ProjectID, managerID)
	if err != nil {
		return nil, err
	}
	if !isManager {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden.not_project_manager", nil)
	}

	if !task.AwaitingReview() {
		return nil, app_errors.NewInvalidStateError(string(task.Status), string(task.ValidationStatus))
	}

	decision := entity.ReviewDecision(req.Decision)

	txn, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}

	updated, err := s.repo.SetValidation(ctx, txn, taskID, decision)
	if err != nil {
		txn.Rollback(ctx)
		return nil, err
	}

	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	if decision == entity.DecisionApprove {
		s.notifyUser(ctx, updated.AssigneeID, fmt.Sprintf("Task \"%s\" has been validated by your manager.", updated.Title), entity.NotificationSuccess)
	} else {
		feedback := "No feedback provided."
		if req.Feedback != nil {
			feedback = *req.Feedback
		}
		s.notifyUser(ctx, updated.AssigneeID, fmt.Sprintf("Task \"%s\" was rejected: %s", updated.Title, feedback), entity.NotificationWarning)
	}

	if queueErr := s.queue.EnqueueValidationResultEmail(&worker_task.ValidationResultPayload{
		TaskID:     updated.ID,
		TaskTitle:  updated.Title,
		AssigneeID: updated.AssigneeID,
		Decision:   string(decision),
		Feedback:   req.Feedback,
	}); queueErr != nil {
		log.Warn().Err(queueErr).Str("task_id", updated.ID).Msg("Failed to enqueue validation result email")
	}

	s.invalidatePerformance(ctx, updated.AssigneeID)

	return &task_dto.DecideResponse{
		TaskID:           updated.ID,
		Title:            updated.Title,
		Status:           string(updated.Status),
		ValidationStatus: string(updated.ValidationStatus),
		Decision:         string(decision),
		Feedback:         req.Feedback,
	}, nil
}

func (s *WorkflowService) PendingForManager(ctx context.Context, managerID string) ([]*task_dto.TaskResponse, *app_errors.AppError) {
	tasks, err := s.repo.ListPendingReview(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}
