package notification_case

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	notification_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/notification-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	notification_repo "github.com/rouasschnibir-dot/pfe/internal/repo/notification-repo"
	"github.com/rs/zerolog/log"
)

type NotificationService struct {
	repo notification_repo.NotificationRepoContract
}

func NewNotificationService(db *pgxpool.Pool) NotificationServiceContract {
	return &NotificationService{
		repo: notification_repo.NewNotificationRepo(db),
	}
}

func (s *NotificationService) Create(ctx context.Context, req *notification_dto.CreateNotificationRequest) (*notification_dto.NotificationResponse, *app_errors.AppError) {
	notificationType := entity.NotificationInfo
	if req.Type != nil {
		notificationType = entity.NotificationType(*req.Type)
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	notification := &entity.NotificationEntity{
		ID:        id.String(),
		UserID:    req.UserID,
		Message:   req.Message,
		Type:      notificationType,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.InsertNotification(ctx, notification); err != nil {
		return nil, err
	}

	resp := notification_dto.FromNotificationEntity(notification)
	return &resp, nil
}

func (s *NotificationService) ListFor(ctx context.Context, userID string) ([]notification_dto.NotificationResponse, *app_errors.AppError) {
	if err := s.seedIfEmpty(ctx, userID); err != nil {
		return nil, err
	}

	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toResponses(notifications), nil
}

func (s *NotificationService) UnreadFor(ctx context.Context, userID string) ([]notification_dto.NotificationResponse, *app_errors.AppError) {
	notifications, err := s.repo.ListUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toResponses(notifications), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) (*notification_dto.NotificationResponse, *app_errors.AppError) {
	notification, err := s.repo.MarkRead(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	resp := notification_dto.FromNotificationEntity(notification)
	return &resp, nil
}

// seedIfEmpty gives a first-time recipient a fixed welcome pair so the inbox
// is never blank. Runs at most once per user, the count check makes replays
// a no-op.
func (s *NotificationService) seedIfEmpty(ctx context.Context, userID string) *app_errors.AppError {
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		message          string
		notificationType entity.NotificationType
	}{
		{"Welcome to your new Task Dashboard!", entity.NotificationInfo},
		{"Check your assigned tasks to get started.", entity.NotificationInfo},
	}

	for _, seed := range seeds {
		id, idErr := uuid.NewV7()
		if idErr != nil {
			return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
		}

		notification := &entity.NotificationEntity{
			ID:        id.String(),
			UserID:    userID,
			Message:   seed.message,
			Type:      seed.notificationType,
			Read:      false,
			CreatedAt: time.Now(),
		}

		if insertErr := s.repo.InsertNotification(ctx, notification); insertErr != nil {
			log.Warn().Err(insertErr).Str("user_id", userID).Msg("Failed to seed notification")
			return insertErr
		}
	}

	return nil
}

func toResponses(notifications []entity.NotificationEntity) []notification_dto.NotificationResponse {
	responses := make([]notification_dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notification_dto.FromNotificationEntity(&notifications[i]))
	}
	return responses
}
