package workflow_case

import (
	"context"
	"testing"
	"time"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/stretchr/testify/assert"
)

// The review inbox only contains tasks on the manager's own projects
func TestPendingForManager_ScopedList(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	service := &WorkflowService{
		repo: repo,
	}

	managerID := "manager-1"
	recentlyCompleted := time.Now().Add(-3 * time.Minute)
	staleCompleted := time.Now().Add(-30 * time.Minute)

	tasks := []entity.TaskEntity{
		{
			ID:               "task-1",
			ProjectID:        "project-1",
			Title:            "Build landing page",
			Status:           entity.TaskCompleted,
			ValidationStatus: entity.ValidationPending,
			Priority:         entity.PriorityCritical,
			AssigneeID:       "employee-1",
			CreatedBy:        managerID,
			CompletedAt:      &recentlyCompleted,
			CreatedAt:        time.Now().Add(-time.Hour),
		},
		{
			ID:               "task-2",
			ProjectID:        "project-1",
			Title:            "Write API docs",
			Status:           entity.TaskCompleted,
			ValidationStatus: entity.ValidationPending,
			Priority:         entity.PriorityLow,
			AssigneeID:       "employee-2",
			CreatedBy:        managerID,
			CompletedAt:      &staleCompleted,
			CreatedAt:        time.Now().Add(-2 * time.Hour),
		},
	}

	repo.On("ListPendingReview", ctx, managerID).Return(tasks, (*app_errors.AppError)(nil))

	resp, err := service.PendingForManager(ctx, managerID)

	assert.Nil(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "task-1", resp[0].TaskID)
	assert.Equal(t, string(entity.ValidationPending), resp[0].ValidationStatus)

	// Inside the grace window the assignee could still retract, so the first
	// entry is not locked yet; the stale one is.
	assert.False(t, resp[0].Locked)
	assert.True(t, resp[1].Locked)

	repo.AssertExpectations(t)
}

func TestPendingForManager_Empty(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	service := &WorkflowService{
		repo: repo,
	}

	repo.On("ListPendingReview", ctx, "manager-2").Return([]entity.TaskEntity{}, (*app_errors.AppError)(nil))

	resp, err := service.PendingForManager(ctx, "manager-2")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, resp, 0)

	repo.AssertExpectations(t)
}
