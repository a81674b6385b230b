package workflow_case

import (
	"context"
	"testing"
	"time"

	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	use_cases "github.com/rouasschnibir-dot/pfe/internal/use-cases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test Happy path
func TestCreateTask_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	notifications := new(MockNotificationRepo)
	mockCache := &use_cases.MockCache{}
	service := &WorkflowService{
		repo:          repo,
		projects:      projects,
		notifications: notifications,
		cache:         mockCache,
	}

	creatorID := "manager-1"
	projectID := "project-1"
	assigneeID := "employee-1"

	project := &entity.ProjectEntity{
		ID:        projectID,
		Title:     "Website Relaunch",
		ManagerID: creatorID,
		Status:    entity.ProjectActive,
		CreatedAt: time.Now(),
	}

	projects.On("GetProjectByID", ctx, projectID).Return(project, (*app_errors.AppError)(nil))
	repo.On("InsertNewTask", ctx, mock.Anything).Return((*app_errors.AppError)(nil))
	notifications.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.UserID == assigneeID && n.Type == entity.NotificationInfo
	})).Return((*app_errors.AppError)(nil))

	req := &task_dto.CreateTaskRequest{
		Title:      "Build landing page",
		AssigneeID: assigneeID,
	}

	// Execute
	resp, err := service.CreateTask(ctx, creatorID, projectID, req)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.TaskID)
	assert.Equal(t, "Build landing page", resp.Title)
	assert.Equal(t, string(entity.TaskNotStarted), resp.Status)
	assert.Equal(t, string(entity.ValidationNone), resp.ValidationStatus)
	assert.Equal(t, string(entity.PriorityMedium), resp.Priority)
	assert.Equal(t, assigneeID, resp.AssigneeID)
	assert.False(t, resp.Locked)
	assert.Equal(t, 1, mockCache.DelCalled)

	repo.AssertExpectations(t)
	projects.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

// Explicit priority wins over the default
func TestCreateTask_ExplicitPriority(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	notifications := new(MockNotificationRepo)
	service := &WorkflowService{
		repo:          repo,
		projects:      projects,
		notifications: notifications,
		cache:         &use_cases.MockCache{},
	}

	projectID := "project-1"
	project := &entity.ProjectEntity{
		ID:        projectID,
		Title:     "Website Relaunch",
		ManagerID: "manager-1",
		Status:    entity.ProjectActive,
		CreatedAt: time.Now(),
	}

	projects.On("GetProjectByID", ctx, projectID).Return(project, (*app_errors.AppError)(nil))
	repo.On("InsertNewTask", ctx, mock.MatchedBy(func(task *entity.TaskEntity) bool {
		return task.Priority == entity.PriorityCritical
	})).Return((*app_errors.AppError)(nil))
	notifications.On("InsertNotification", ctx, mock.Anything).Return((*app_errors.AppError)(nil))

	priority := string(entity.PriorityCritical)
	req := &task_dto.CreateTaskRequest{
		Title:      "Hotfix production outage",
		Priority:   &priority,
		AssigneeID: "employee-1",
	}

	resp, err := service.CreateTask(ctx, "manager-1", projectID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.PriorityCritical), resp.Priority)

	repo.AssertExpectations(t)
}

// Unknown project id
func TestCreateTask_ProjectNotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	service := &WorkflowService{
		repo:     repo,
		projects: projects,
		cache:    &use_cases.MockCache{},
	}

	projectID := "project-missing"
	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "project_not_found", nil)

	projects.On("GetProjectByID", ctx, projectID).Return((*entity.ProjectEntity)(nil), notFound)

	req := &task_dto.CreateTaskRequest{
		Title:      "Build landing page",
		AssigneeID: "employee-1",
	}

	resp, err := service.CreateTask(ctx, "manager-1", projectID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)
	assert.Equal(t, "project_not_found", err.MessageKey)

	repo.AssertNotCalled(t, "InsertNewTask", mock.Anything, mock.Anything)
	projects.AssertExpectations(t)
}
