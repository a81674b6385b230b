package notification_case

import (
	"context"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) InsertNotification(ctx context.Context, notification *entity.NotificationEntity) *app_errors.AppError {
	args := m.Called(ctx, notification)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entity.NotificationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) ListUnread(ctx context.Context, userID string) ([]entity.NotificationEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entity.NotificationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) CountByUser(ctx context.Context, userID string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, notificationID string) (*entity.NotificationEntity, *app_errors.AppError) {
	args := m.Called(ctx, notificationID)
	return args.Get(0).(*entity.NotificationEntity), args.Get(1).(*app_errors.AppError)
}
