package performance_case

import (
	"context"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	performance_repo "github.com/rouasschnibir-dot/pfe/internal/repo/performance-repo"
	"github.com/stretchr/testify/mock"
)

type MockPerformanceRepo struct {
	mock.Mock
}

func (m *MockPerformanceRepo) EmployeeTaskCounts(ctx context.Context, employeeID string) (*performance_repo.TaskCounts, *app_errors.AppError) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(*performance_repo.TaskCounts), args.Get(1).(*app_errors.AppError)
}

func (m *MockPerformanceRepo) ProjectTaskCounts(ctx context.Context, projectID string) (*performance_repo.TaskCounts, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*performance_repo.TaskCounts), args.Get(1).(*app_errors.AppError)
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
