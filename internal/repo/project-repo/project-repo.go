package project_repo

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) ProjectRepoContract {
	return &ProjectRepo{
		db: db,
	}
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
	SELECT id, title, department, manager_id, status, start_date, end_date, created_at, updated_at
	FROM projects
	WHERE id = $1;
	`

	var row entity.ProjectEntity
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&row.ID, &row.Title, &row.Department, &row.ManagerID, &row.Status, &row.StartDate, &row.EndDate, &row.CreatedAt, &row.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

func (r *ProjectRepo) CheckProjectManager(ctx context.Context, projectID, managerID string) (bool, *app_errors.AppError) {
	query := `
	SELECT EXISTS (
		SELECT 1
		FROM projects
		WHERE id = $1
			AND manager_id = $2
	);
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, projectID, managerID).Scan(&exists); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return exists, nil
}
