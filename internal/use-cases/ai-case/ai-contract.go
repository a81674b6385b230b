package ai_case

import (
	"context"

	ai_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/ai-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type AIServiceContract interface {
	EmployeeRecommendations(ctx context.Context, employeeID string) ([]ai_dto.Recommendation, *app_errors.AppError)
	Report(ctx context.Context, employeeID string) (*ai_dto.ReportResponse, *app_errors.AppError)
}
