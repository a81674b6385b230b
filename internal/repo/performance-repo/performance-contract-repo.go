package performance_repo

import (
	"context"

	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

// TaskCounts is the raw aggregate a snapshot is derived from. What counts as
// completed differs per view: employee snapshots only credit validated work,
// project progress counts execution-complete tasks whether or not the manager
// has signed off yet.
type TaskCounts struct {
	Assigned  int
	Completed int
}

type PerformanceRepoContract interface {
	EmployeeTaskCounts(ctx context.Context, employeeID string) (*TaskCounts, *app_errors.AppError)
	ProjectTaskCounts(ctx context.Context, projectID string) (*TaskCounts, *app_errors.AppError)
}
