package performance_case

import (
	"context"
	"testing"
	"time"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	performance_repo "github.com/rouasschnibir-dot/pfe/internal/repo/performance-repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeProject(projectID string) *entity.ProjectEntity {
	return &entity.ProjectEntity{
		ID:        projectID,
		Title:     "Website Relaunch",
		ManagerID: "manager-1",
		Status:    entity.ProjectActive,
		CreatedAt: time.Now(),
	}
}

// 2 of 4 execution-complete tasks is 50% progress
func TestProjectProgress_HalfDone(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPerformanceRepo)
	projects := new(MockProjectRepo)
	service := &PerformanceService{
		repo:     repo,
		projects: projects,
	}

	projectID := "project-1"

	projects.On("GetProjectByID", ctx, projectID).Return(activeProject(projectID), (*app_errors.AppError)(nil))
	repo.On("ProjectTaskCounts", ctx, projectID).Return(&performance_repo.TaskCounts{Assigned: 4, Completed: 2}, (*app_errors.AppError)(nil))

	resp, err := service.ProjectProgress(ctx, projectID)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, projectID, resp.ProjectID)
	assert.Equal(t, 50, resp.Progress)

	repo.AssertExpectations(t)
	projects.AssertExpectations(t)
}

// A project without tasks reports 0 progress
func TestProjectProgress_EmptyTaskSet(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPerformanceRepo)
	projects := new(MockProjectRepo)
	service := &PerformanceService{
		repo:     repo,
		projects: projects,
	}

	projectID := "project-empty"

	projects.On("GetProjectByID", ctx, projectID).Return(activeProject(projectID), (*app_errors.AppError)(nil))
	repo.On("ProjectTaskCounts", ctx, projectID).Return(&performance_repo.TaskCounts{}, (*app_errors.AppError)(nil))

	resp, err := service.ProjectProgress(ctx, projectID)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 0, resp.Progress)
}

// Unknown project id
func TestProjectProgress_ProjectNotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPerformanceRepo)
	projects := new(MockProjectRepo)
	service := &PerformanceService{
		repo:     repo,
		projects: projects,
	}

	projectID := "project-missing"
	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "project_not_found", nil)

	projects.On("GetProjectByID", ctx, projectID).Return((*entity.ProjectEntity)(nil), notFound)

	resp, err := service.ProjectProgress(ctx, projectID)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "project_not_found", err.MessageKey)

	repo.AssertNotCalled(t, "ProjectTaskCounts", mock.Anything, mock.Anything)
}
