package performance_case

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	performance_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/performance-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	performance_repo "github.com/rouasschnibir-dot/pfe/internal/repo/performance-repo"
	use_cases "github.com/rouasschnibir-dot/pfe/internal/use-cases"
	"github.com/stretchr/testify/assert"
)

// 15 of 20 validated tasks round to a 75% completion rate
func TestEmployeePerformance_ComputesRate(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPerformanceRepo)
	mockCache := &use_cases.MockCache{}
	service := &PerformanceService{
		repo:  repo,
		cache: mockCache,
	}

	employeeID := "employee-1"
	counts := &performance_repo.TaskCounts{Assigned: 20, Completed: 15}

	repo.On("EmployeeTaskCounts", ctx, employeeID).Return(counts, (*app_errors.AppError)(nil))

	resp, err := service.EmployeePerformance(ctx, employeeID)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, employeeID, resp.EmployeeID)
	assert.Equal(t, 20, resp.TasksAssigned)
	assert.Equal(t, 15, resp.TasksCompleted)
	assert.Equal(t, 75, resp.CompletionRate)
	assert.Equal(t, 1, mockCache.GetCalled)
	assert.Equal(t, 1, mockCache.SetCalled)

	repo.AssertExpectations(t)
}

// No assigned tasks means rate 0, not a division by zero
func TestEmployeePerformance_ZeroAssigned(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPerformanceRepo)
	service := &PerformanceService{
		repo:  repo,
		cache: &use_cases.MockCache{},
	}

	employeeID := "employee-idle"
	counts := &performance_repo.TaskCounts{Assigned: 0, Completed: 0}

	repo.On("EmployeeTaskCounts", ctx, employeeID).Return(counts, (*app_errors.AppError)(nil))

	resp, err := service.EmployeePerformance(ctx, employeeID)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 0, resp.TasksAssigned)
	assert.Equal(t, 0, resp.CompletionRate)

	repo.AssertExpectations(t)
}

// A warm cache short-circuits the recomputation entirely
func TestEmployeePerformance_CacheHit(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPerformanceRepo)
	cached := performance_dto.PerformanceResponse{
		EmployeeID:     "employee-1",
		TasksAssigned:  10,
		TasksCompleted: 9,
		CompletionRate: 90,
		Period:         "2026-09",
	}
	raw, marshalErr := json.Marshal(cached)
	assert.NoError(t, marshalErr)

	mockCache := &use_cases.MockCache{
		GetFn: func(ctx context.Context, key string) ([]byte, *app_errors.AppError) {
			assert.Equal(t, EmployeeCacheKey("employee-1"), key)
			return raw, nil
		},
	}
	service := &PerformanceService{
		repo:  repo,
		cache: mockCache,
	}

	resp, err := service.EmployeePerformance(ctx, "employee-1")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 90, resp.CompletionRate)
	assert.Equal(t, 9, resp.TasksCompleted)

	repo.AssertNotCalled(t, "EmployeeTaskCounts", ctx, "employee-1")
}

// Repo failure propagates unchanged
func TestEmployeePerformance_RepoError(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPerformanceRepo)
	service := &PerformanceService{
		repo:  repo,
		cache: &use_cases.MockCache{},
	}

	internalErr := app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", nil)

	repo.On("EmployeeTaskCounts", ctx, "employee-1").Return((*performance_repo.TaskCounts)(nil), internalErr)

	resp, err := service.EmployeePerformance(ctx, "employee-1")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 500, err.Code)

	repo.AssertExpectations(t)
}
