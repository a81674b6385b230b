package workflow_case

import (
	"context"
	"strings"
	"testing"
	"time"

	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	use_cases "github.com/rouasschnibir-dot/pfe/internal/use-cases"
	worker_task "github.com/rouasschnibir-dot/pfe/internal/worker/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingTask(taskID, assigneeID string) *entity.TaskEntity {
	completedAt := time.Now().Add(-2 * time.Minute)
	return &entity.TaskEntity{
		ID:               taskID,
		ProjectID:        "project-1",
		Title:            "Build landing page",
		Status:           entity.TaskCompleted,
		ValidationStatus: entity.ValidationPending,
		Priority:         entity.PriorityHigh,
		AssigneeID:       assigneeID,
		CreatedBy:        "manager-1",
		CompletedAt:      &completedAt,
		CreatedAt:        time.Now().Add(-time.Hour),
	}
}

// Approving seals the task and congratulates the assignee
func TestDecide_Approve(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	notifications := new(MockNotificationRepo)
	notifyQueue := new(use_cases.MockNotifyQueue)
	txManager := new(MockTxManager)
	txn := new(MockTx)
	mockCache := &use_cases.MockCache{}
	service := &WorkflowService{
		repo:          repo,
		projects:      projects,
		notifications: notifications,
		queue:         notifyQueue,
		cache:         mockCache,
		txManager:     txManager,
	}

	managerID := "manager-1"
	assigneeID := "employee-1"
	taskID := "task-1"
	task := pendingTask(taskID, assigneeID)

	validated := &entity.TaskEntity{
		ID:               taskID,
		ProjectID:        "project-1",
		Title:            "Build landing page",
		Status:           entity.TaskCompleted,
		ValidationStatus: entity.ValidationValidated,
		Priority:         entity.PriorityHigh,
		AssigneeID:       assigneeID,
		CreatedBy:        managerID,
		CompletedAt:      task.CompletedAt,
		CreatedAt:        task.CreatedAt,
	}

	repo.On("GetTaskByID", ctx, taskID).Return(task, (*app_errors.AppError)(nil))
	projects.On("CheckProjectManager", ctx, "project-1", managerID).Return(true, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(txn, (*app_errors.AppError)(nil))
	repo.On("SetValidation", ctx, txn, taskID, entity.DecisionApprove).Return(validated, (*app_errors.AppError)(nil))
	txn.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	notifications.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.UserID == assigneeID &&
			n.Type == entity.NotificationSuccess &&
			strings.Contains(n.Message, "Build landing page")
	})).Return((*app_errors.AppError)(nil))
	notifyQueue.On("EnqueueValidationResultEmail", mock.MatchedBy(func(p *worker_task.ValidationResultPayload) bool {
		return p.TaskID == taskID && p.Decision == string(entity.DecisionApprove)
	})).Return(nil)

	req := &task_dto.DecideRequest{Decision: string(entity.DecisionApprove)}

	// Execute
	resp, err := service.Decide(ctx, managerID, taskID, req)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, taskID, resp.TaskID)
	assert.Equal(t, string(entity.ValidationValidated), resp.ValidationStatus)
	assert.Equal(t, string(entity.TaskCompleted), resp.Status)
	assert.Equal(t, string(entity.DecisionApprove), resp.Decision)
	assert.Equal(t, 1, mockCache.DelCalled)

	repo.AssertExpectations(t)
	projects.AssertExpectations(t)
	notifications.AssertExpectations(t)
	notifyQueue.AssertExpectations(t)
	txn.AssertExpectations(t)
	txManager.AssertExpectations(t)
}

// Rejection reopens the task and hands the feedback to the assignee
func TestDecide_RejectWithFeedback(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	notifications := new(MockNotificationRepo)
	notifyQueue := new(use_cases.MockNotifyQueue)
	txManager := new(MockTxManager)
	txn := new(MockTx)
	service := &WorkflowService{
		repo:          repo,
		projects:      projects,
		notifications: notifications,
		queue:         notifyQueue,
		cache:         &use_cases.MockCache{},
		txManager:     txManager,
	}

	managerID := "manager-1"
	assigneeID := "employee-1"
	taskID := "task-1"
	task := pendingTask(taskID, assigneeID)

	rejected := &entity.TaskEntity{
		ID:               taskID,
		ProjectID:        "project-1",
		Title:            "Build landing page",
		Status:           entity.TaskInProgress,
		ValidationStatus: entity.ValidationRejected,
		Priority:         entity.PriorityHigh,
		AssigneeID:       assigneeID,
		CreatedBy:        managerID,
		CreatedAt:        task.CreatedAt,
	}

	feedback := "The hero section renders broken on mobile."

	repo.On("GetTaskByID", ctx, taskID).Return(task, (*app_errors.AppError)(nil))
	projects.On("CheckProjectManager", ctx, "project-1", managerID).Return(true, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(txn, (*app_errors.AppError)(nil))
	repo.On("SetValidation", ctx, txn, taskID, entity.DecisionReject).Return(rejected, (*app_errors.AppError)(nil))
	txn.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	notifications.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.UserID == assigneeID &&
			n.Type == entity.NotificationWarning &&
			strings.Contains(n.Message, feedback)
	})).Return((*app_errors.AppError)(nil))
	notifyQueue.On("EnqueueValidationResultEmail", mock.Anything).Return(nil)

	req := &task_dto.DecideRequest{
		Decision: string(entity.DecisionReject),
		Feedback: &feedback,
	}

	resp, err := service.Decide(ctx, managerID, taskID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.TaskInProgress), resp.Status)
	assert.Equal(t, string(entity.ValidationRejected), resp.ValidationStatus)
	assert.Equal(t, &feedback, resp.Feedback)

	repo.AssertExpectations(t)
	notifications.AssertExpectations(t)
	notifyQueue.AssertExpectations(t)
}

// Caller does not manage the task's project
func TestDecide_NotProjectManager(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	service := &WorkflowService{
		repo:     repo,
		projects: projects,
		cache:    &use_cases.MockCache{},
	}

	taskID := "task-1"
	task := pendingTask(taskID, "employee-1")

	repo.On("GetTaskByID", ctx, taskID).Return(task, (*app_errors.AppError)(nil))
	projects.On("CheckProjectManager", ctx, "project-1", "manager-2").Return(false, (*app_errors.AppError)(nil))

	req := &task_dto.DecideRequest{Decision: string(entity.DecisionApprove)}

	resp, err := service.Decide(ctx, "manager-2", taskID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrForbidden, err.Type)
	assert.Equal(t, "forbidden.not_project_manager", err.MessageKey)

	repo.AssertNotCalled(t, "SetValidation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Deciding on a task that is not awaiting review
func TestDecide_NotAwaitingReview(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	service := &WorkflowService{
		repo:     repo,
		projects: projects,
		cache:    &use_cases.MockCache{},
	}

	managerID := "manager-1"
	taskID := "task-1"
	task := &entity.TaskEntity{
		ID:               taskID,
		ProjectID:        "project-1",
		Title:            "Build landing page",
		Status:           entity.TaskInProgress,
		ValidationStatus: entity.ValidationNone,
		Priority:         entity.PriorityMedium,
		AssigneeID:       "employee-1",
		CreatedBy:        managerID,
		CreatedAt:        time.Now(),
	}

	repo.On("GetTaskByID", ctx, taskID).Return(task, (*app_errors.AppError)(nil))
	projects.On("CheckProjectManager", ctx, "project-1", managerID).Return(true, (*app_errors.AppError)(nil))

	req := &task_dto.DecideRequest{Decision: string(entity.DecisionApprove)}

	resp, err := service.Decide(ctx, managerID, taskID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, app_errors.ErrInvalidState, err.Type)
	assert.Equal(t, "conflict.task_not_awaiting_review", err.MessageKey)
	assert.Len(t, err.Details, 2)

	repo.AssertNotCalled(t, "SetValidation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Unknown task id propagates unchanged
func TestDecide_TaskNotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	service := &WorkflowService{
		repo:  repo,
		cache: &use_cases.MockCache{},
	}

	taskID := "task-missing"
	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "task_not_found", nil)

	repo.On("GetTaskByID", ctx, taskID).Return((*entity.TaskEntity)(nil), notFound)

	req := &task_dto.DecideRequest{Decision: string(entity.DecisionApprove)}

	resp, err := service.Decide(ctx, "manager-1", taskID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "task_not_found", err.MessageKey)

	repo.AssertExpectations(t)
}
