package ai_case

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	ai_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/ai-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	performance_case "github.com/rouasschnibir-dot/pfe/internal/use-cases/performance-case"
)

// AIService turns performance snapshots into canned recommendations. There is
// no model behind this, the thresholds are fixed rules over the completion
// rate.
type AIService struct {
	performance performance_case.PerformanceServiceContract
}

func NewAIService(db *pgxpool.Pool, redis *redis.Client) AIServiceContract {
	return &AIService{
		performance: performance_case.NewPerformanceService(db, redis),
	}
}

func (s *AIService) EmployeeRecommendations(ctx context.Context, employeeID string) ([]ai_dto.Recommendation, *app_errors.AppError) {
	snapshot, err := s.performance.EmployeePerformance(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	recommendations := []ai_dto.Recommendation{}

	switch {
	case snapshot.CompletionRate < 50:
		recommendations = append(recommendations, ai_dto.Recommendation{
			Type:       "warning",
			TargetID:   employeeID,
			Reason:     "Low completion rate (< 50%)",
			Suggestion: "Schedule 1:1 Review",
			Action:     "review",
		})
	case snapshot.CompletionRate > 90:
		recommendations = append(recommendations, ai_dto.Recommendation{
			Type:       "bonus",
			TargetID:   employeeID,
			Reason:     "Excellent performance (> 90%)",
			Suggestion: "Award Performance Bonus",
			Action:     "bonus",
		})
	}

	return recommendations, nil
}

func (s *AIService) Report(ctx context.Context, employeeID string) (*ai_dto.ReportResponse, *app_errors.AppError) {
	recommendations, err := s.EmployeeRecommendations(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &ai_dto.ReportResponse{
		GeneratedAt:     time.Now().Format(time.RFC3339),
		Recommendations: recommendations,
	}, nil
}
