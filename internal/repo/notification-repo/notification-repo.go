package notification_repo

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type NotificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepo(db *pgxpool.Pool) NotificationRepoContract {
	return &NotificationRepo{
		db: db,
	}
}

func (r *NotificationRepo) InsertNotification(ctx context.Context, notification *entity.NotificationEntity) *app_errors.AppError {
	query := `
	INSERT INTO notifications (
			id,
			user_id,
			message,
			type,
			read,
			created_at
		) VALUES (
			$1,$2,$3,$4,$5,$6
		);
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		notification.ID,
		notification.UserID,
		notification.Message,
		notification.Type,
		notification.Read,
		notification.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError) {
	query := `
	SELECT id, user_id, message, type, read, created_at
	FROM notifications
	WHERE user_id = $1
	ORDER BY created_at DESC;
	`

	return r.queryNotifications(ctx, query, userID)
}

func (r *NotificationRepo) ListUnread(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError) {
	query := `
	SELECT id, user_id, message, type, read, created_at
	FROM notifications
	WHERE user_id = $1
		AND read = FALSE
	ORDER BY created_at DESC;
	`

	return r.queryNotifications(ctx, query, userID)
}

func (r *NotificationRepo) CountByUser(ctx context.Context, userID string) (int64, *app_errors.AppError) {
	query := `
	SELECT COUNT(*)
	FROM notifications
	WHERE user_id = $1;
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return count, nil
}

// MarkRead is idempotent, marking an already-read notification succeeds and
// returns the unchanged row.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID string) (*entity.NotificationEntity, *app_errors.AppError) {
	query := `
	UPDATE notifications
	SET read = TRUE
	WHERE id = $1
	RETURNING id, user_id, message, type, read, created_at;
	`

	var row entity.NotificationEntity
	if err := r.db.QueryRow(ctx, query, notificationID).Scan(&row.ID, &row.UserID, &row.Message, &row.Type, &row.Read, &row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "notification_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &row, nil
}

func (r *NotificationRepo) queryNotifications(ctx context.Context, query string, args ...any) ([]entity.NotificationEntity, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.NotificationEntity
	for rows.Next() {
		var result entity.NotificationEntity
		if err := rows.Scan(&result.ID, &result.UserID, &result.Message, &result.Type, &result.Read, &result.CreatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}
