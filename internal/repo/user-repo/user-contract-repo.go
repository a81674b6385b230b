package user_repo

import (
	"context"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type UserRepoContract interface {
	GetUserByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
}
