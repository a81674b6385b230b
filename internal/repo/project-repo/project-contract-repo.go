package project_repo

import (
	"context"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type ProjectRepoContract interface {
	GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError)
	CheckProjectManager(ctx context.Context, projectID, managerID string) (bool, *app_errors.AppError)
}
