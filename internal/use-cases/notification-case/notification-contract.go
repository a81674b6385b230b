package notification_case

import (
	"context"

	notification_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/notification-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type NotificationServiceContract interface {
	Create(ctx context.Context, req *notification_dto.CreateNotificationRequest) (*notification_dto.NotificationResponse, *app_errors.AppError)
	ListFor(ctx context.Context, userID string) ([]notification_dto.NotificationResponse, *app_errors.AppError)
	UnreadFor(ctx context.Context, userID string) ([]notification_dto.NotificationResponse, *app_errors.AppError)
	MarkRead(ctx context.Context, notificationID string) (*notification_dto.NotificationResponse, *app_errors.AppError)
}
