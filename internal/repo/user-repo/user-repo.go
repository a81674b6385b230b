package user_repo

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepoContract {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) GetUserByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	query := `
	SELECT id, email, name, username, role, is_active, created_at
	FROM users
	WHERE id = $1;
	`

	var row entity.UserEntity
	if err := r.db.QueryRow(ctx, query, userID).Scan(&row.ID, &row.Email, &row.Name, &row.Username, &row.Role, &row.IsActive, &row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "user_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}
