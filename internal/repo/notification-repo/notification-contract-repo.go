package notification_repo

import (
	"context"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type NotificationRepoContract interface {
	InsertNotification(ctx context.Context, notification *entity.NotificationEntity) *app_errors.AppError
	ListByUser(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError)
	ListUnread(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError)
	CountByUser(ctx context.Context, userID string) (int64, *app_errors.AppError)
	MarkRead(ctx context.Context, notificationID string) (*entity.NotificationEntity, *app_errors.AppError)
}
