package workflow_case

import (
	"context"
	"time"

	"github.com/rouasschnibir-dot/pfe/internal/abstraction/tx"
	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListAll(ctx context.Context, filter *task_dto.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListByAssignee(ctx context.Context, assigneeID string) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, assigneeID)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListByProject(ctx context.Context, projectID string) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListPendingReview(ctx context.Context, managerID string) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListDueSoon(ctx context.Context, within time.Duration) ([]entity.ReminderTask, *app_errors.AppError) {
	args := m.Called(ctx, within)
	return args.Get(0).([]entity.ReminderTask), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) InsertNewTask(ctx context.Context, task *entity.TaskEntity) *app_errors.AppError {
	args := m.Called(ctx, task)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) SetExecutionStatus(ctx context.Context, t tx.Tx, taskID string, status entity.TaskStatus) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID, status)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) SetValidation(ctx context.Context, t tx.Tx, taskID string, decision entity.ReviewDecision) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID, decision)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) CheckProjectManager(ctx context.Context, projectID, managerID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, projectID, managerID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) InsertNotification(ctx context.Context, notification *entity.NotificationEntity) *app_errors.AppError {
	args := m.Called(ctx, notification)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entity.NotificationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) ListUnread(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entity.NotificationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) CountByUser(ctx context.Context, userID string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, notificationID string) (*entity.NotificationEntity, *app_errors.AppError) {
	args := m.Called(ctx, notificationID)
	return args.Get(0).(*entity.NotificationEntity), args.Get(1).(*app_errors.AppError)
}
