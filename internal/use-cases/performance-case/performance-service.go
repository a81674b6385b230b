package performance_case

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rouasschnibir-dot/pfe/internal/abstraction/cache"
	performance_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/performance-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	performance_repo "github.com/rouasschnibir-dot/pfe/internal/repo/performance-repo"
	project_repo "github.com/rouasschnibir-dot/pfe/internal/repo/project-repo"
	"github.com/rs/zerolog/log"
)

const snapshotTTL = 5 * time.Minute

// EmployeeCacheKey names the cached snapshot for one employee. Every task
// mutation touching that employee must delete this key, the cache is an
// optimization over a projection, never the source of truth.
func EmployeeCacheKey(employeeID string) string {
	return fmt.Sprintf("perf:employee:%s", employeeID)
}

type PerformanceService struct {
	repo     performance_repo.PerformanceRepoContract
	projects project_repo.ProjectRepoContract
	cache    cache.Cache
}

func NewPerformanceService(db *pgxpool.Pool, redis *redis.Client) PerformanceServiceContract {
	return &PerformanceService{
		repo:     performance_repo.NewPerformanceRepo(db),
		projects: project_repo.NewProjectRepo(db),
		cache:    cache.NewRedisCache(redis),
	}
}

func (s *PerformanceService) EmployeePerformance(ctx context.Context, employeeID string) (*performance_dto.PerformanceResponse, *app_errors.AppError) {
	key := EmployeeCacheKey(employeeID)

	if raw, err := s.cache.Get(ctx, key); err == nil && raw != nil {
		var cached performance_dto.PerformanceResponse
		if unmarshalErr := json.Unmarshal(raw, &cached); unmarshalErr == nil {
			return &cached, nil
		}
	}

	counts, err := s.repo.EmployeeTaskCounts(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := &performance_dto.PerformanceResponse{
		EmployeeID:     employeeID,
		TasksAssigned:  counts.Assigned,
		TasksCompleted: counts.Completed,
		CompletionRate: completionRate(counts),
		Period:         time.Now().Format("2006-01"),
	}

	if cacheErr := s.cache.Set(ctx, key, resp, snapshotTTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("employee_id", employeeID).Msg("Failed to cache performance snapshot")
	}

	return resp, nil
}

func (s *PerformanceService) ProjectProgress(ctx context.Context, projectID string) (*performance_dto.ProjectProgressResponse, *app_errors.AppError) {
	if _, err := s.projects.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	counts, err := s.repo.ProjectTaskCounts(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &performance_dto.ProjectProgressResponse{
		ProjectID: projectID,
		Progress:  completionRate(counts),
	}, nil
}
