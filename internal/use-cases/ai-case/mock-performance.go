package ai_case

import (
	"context"

	performance_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/performance-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockPerformanceService struct {
	mock.Mock
}

func (m *MockPerformanceService) EmployeePerformance(ctx context.Context, employeeID string) (*performance_dto.PerformanceResponse, *app_errors.AppError) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(*performance_dto.PerformanceResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockPerformanceService) ProjectProgress(ctx context.Context, projectID string) (*performance_dto.ProjectProgressResponse, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*performance_dto.ProjectProgressResponse), args.Get(1).(*app_errors.AppError)
}
