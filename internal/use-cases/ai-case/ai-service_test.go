package ai_case

import (
	"context"
	"testing"

	performance_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/performance-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/stretchr/testify/assert"
)

func snapshot(employeeID string, rate int) *performance_dto.PerformanceResponse {
	return &performance_dto.PerformanceResponse{
		EmployeeID:     employeeID,
		TasksAssigned:  10,
		TasksCompleted: rate / 10,
		CompletionRate: rate,
		Period:         "2026-09",
	}
}

func TestEmployeeRecommendations_LowRate(t *testing.T) {
	ctx := context.Background()

	performance := new(MockPerformanceService)
	service := &AIService{performance: performance}

	performance.On("EmployeePerformance", ctx, "employee-1").Return(snapshot("employee-1", 40), (*app_errors.AppError)(nil))

	recommendations, err := service.EmployeeRecommendations(ctx, "employee-1")

	assert.Nil(t, err)
	assert.Len(t, recommendations, 1)
	assert.Equal(t, "warning", recommendations[0].Type)
	assert.Equal(t, "employee-1", recommendations[0].TargetID)
	assert.Equal(t, "Schedule 1:1 Review", recommendations[0].Suggestion)
	assert.Equal(t, "review", recommendations[0].Action)

	performance.AssertExpectations(t)
}

func TestEmployeeRecommendations_HighRate(t *testing.T) {
	ctx := context.Background()

	performance := new(MockPerformanceService)
	service := &AIService{performance: performance}

	performance.On("EmployeePerformance", ctx, "employee-2").Return(snapshot("employee-2", 95), (*app_errors.AppError)(nil))

	recommendations, err := service.EmployeeRecommendations(ctx, "employee-2")

	assert.Nil(t, err)
	assert.Len(t, recommendations, 1)
	assert.Equal(t, "bonus", recommendations[0].Type)
	assert.Equal(t, "Award Performance Bonus", recommendations[0].Suggestion)

	performance.AssertExpectations(t)
}

// A middling rate produces no recommendation at all
func TestEmployeeRecommendations_MiddleBand(t *testing.T) {
	ctx := context.Background()

	performance := new(MockPerformanceService)
	service := &AIService{performance: performance}

	performance.On("EmployeePerformance", ctx, "employee-3").Return(snapshot("employee-3", 75), (*app_errors.AppError)(nil))

	recommendations, err := service.EmployeeRecommendations(ctx, "employee-3")

	assert.Nil(t, err)
	assert.Empty(t, recommendations)
}

// Boundary values sit inside the silent band
func TestEmployeeRecommendations_Boundaries(t *testing.T) {
	ctx := context.Background()

	performance := new(MockPerformanceService)
	service := &AIService{performance: performance}

	performance.On("EmployeePerformance", ctx, "employee-50").Return(snapshot("employee-50", 50), (*app_errors.AppError)(nil))
	performance.On("EmployeePerformance", ctx, "employee-90").Return(snapshot("employee-90", 90), (*app_errors.AppError)(nil))

	atFifty, err := service.EmployeeRecommendations(ctx, "employee-50")
	assert.Nil(t, err)
	assert.Empty(t, atFifty)

	atNinety, err := service.EmployeeRecommendations(ctx, "employee-90")
	assert.Nil(t, err)
	assert.Empty(t, atNinety)
}

func TestReport(t *testing.T) {
	ctx := context.Background()

	performance := new(MockPerformanceService)
	service := &AIService{performance: performance}

	performance.On("EmployeePerformance", ctx, "employee-1").Return(snapshot("employee-1", 40), (*app_errors.AppError)(nil))

	report, err := service.Report(ctx, "employee-1")

	assert.Nil(t, err)
	assert.NotNil(t, report)
	assert.NotEmpty(t, report.GeneratedAt)
	assert.Len(t, report.Recommendations, 1)
}
