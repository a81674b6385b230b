package performance_repo

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type PerformanceRepo struct {
	db *pgxpool.Pool
}

func NewPerformanceRepo(db *pgxpool.Pool) PerformanceRepoContract {
	return &PerformanceRepo{
		db: db,
	}
}

func (r *PerformanceRepo) EmployeeTaskCounts(ctx context.Context, employeeID string) (*TaskCounts, *app_errors.AppError) {
	query := `
	SELECT COUNT(*),
		COUNT(*) FILTER (WHERE validation_status = 'Validated')
	FROM tasks
	WHERE assignee_id = $1;
	`

	var counts TaskCounts
	if err := r.db.QueryRow(ctx, query, employeeID).Scan(&counts.Assigned, &counts.Completed); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &counts, nil
}

func (r *PerformanceRepo) ProjectTaskCounts(ctx context.Context, projectID string) (*TaskCounts, *app_errors.AppError) {
	query := `
	SELECT COUNT(*),
		COUNT(*) FILTER (WHERE status = 'Completed')
	FROM tasks
	WHERE project_id = $1;
	`

	var counts TaskCounts
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&counts.Assigned, &counts.Completed); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &counts, nil
}
