package performance_case

import (
	"context"

	performance_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/performance-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type PerformanceServiceContract interface {
	EmployeePerformance(ctx context.Context, employeeID string) (*performance_dto.PerformanceResponse, *app_errors.AppError)
	ProjectProgress(ctx context.Context, projectID string) (*performance_dto.ProjectProgressResponse, *app_errors.AppError)
}
