package notification_case

import (
	"context"
	"testing"
	"time"

	notification_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/notification-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Omitting the type defaults to info
func TestCreateNotification_DefaultType(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	service := &NotificationService{repo: repo}

	repo.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.UserID == "user-1" &&
			n.Type == entity.NotificationInfo &&
			n.Read == false &&
			n.ID != ""
	})).Return((*app_errors.AppError)(nil))

	req := &notification_dto.CreateNotificationRequest{
		UserID:  "user-1",
		Message: "Quarterly review starts next week.",
	}

	resp, err := service.Create(ctx, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, entity.NotificationInfo, resp.Type)
	assert.False(t, resp.Read)

	repo.AssertExpectations(t)
}

func TestCreateNotification_ExplicitType(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	service := &NotificationService{repo: repo}

	repo.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.Type == entity.NotificationError
	})).Return((*app_errors.AppError)(nil))

	notificationType := string(entity.NotificationError)
	req := &notification_dto.CreateNotificationRequest{
		UserID:  "user-1",
		Message: "Import job failed.",
		Type:    &notificationType,
	}

	resp, err := service.Create(ctx, req)

	assert.Nil(t, err)
	assert.Equal(t, entity.NotificationError, resp.Type)

	repo.AssertExpectations(t)
}

// A first-time recipient gets the fixed welcome pair before listing
func TestListFor_SeedsEmptyInbox(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	service := &NotificationService{repo: repo}

	userID := "user-new"

	repo.On("CountByUser", ctx, userID).Return(0, (*app_errors.AppError)(nil))
	repo.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.UserID == userID && n.Type == entity.NotificationInfo
	})).Return((*app_errors.AppError)(nil)).Twice()

	seeded := []entity.NotificationEntity{
		{ID: "n-2", UserID: userID, Message: "Check your assigned tasks to get started.", Type: entity.NotificationInfo, CreatedAt: time.Now()},
		{ID: "n-1", UserID: userID, Message: "Welcome to your new Task Dashboard!", Type: entity.NotificationInfo, CreatedAt: time.Now().Add(-time.Second)},
	}
	repo.On("ListByUser", ctx, userID).Return(seeded, (*app_errors.AppError)(nil))

	resp, err := service.ListFor(ctx, userID)

	assert.Nil(t, err)
	assert.Len(t, resp, 2)

	repo.AssertExpectations(t)
}

// Seeding never repeats once the inbox has anything in it
func TestListFor_NoReseed(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	service := &NotificationService{repo: repo}

	userID := "user-1"
	existing := []entity.NotificationEntity{
		{ID: "n-1", UserID: userID, Message: "Task \"Build landing page\" has been validated by your manager.", Type: entity.NotificationSuccess, Read: true, CreatedAt: time.Now()},
	}

	repo.On("CountByUser", ctx, userID).Return(1, (*app_errors.AppError)(nil))
	repo.On("ListByUser", ctx, userID).Return(existing, (*app_errors.AppError)(nil))

	resp, err := service.ListFor(ctx, userID)

	assert.Nil(t, err)
	assert.Len(t, resp, 1)

	repo.AssertNotCalled(t, "InsertNotification", mock.Anything, mock.Anything)
}

func TestUnreadFor(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	service := &NotificationService{repo: repo}

	userID := "user-1"
	unread := []entity.NotificationEntity{
		{ID: "n-1", UserID: userID, Message: "New task assigned: Build landing page", Type: entity.NotificationInfo, CreatedAt: time.Now()},
	}

	repo.On("ListUnread", ctx, userID).Return(unread, (*app_errors.AppError)(nil))

	resp, err := service.UnreadFor(ctx, userID)

	assert.Nil(t, err)
	assert.Len(t, resp, 1)
	assert.False(t, resp[0].Read)

	repo.AssertExpectations(t)
}

// Marking the same notification twice is a no-op, not an error
func TestMarkRead_Idempotent(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	service := &NotificationService{repo: repo}

	notificationID := "n-1"
	alreadyRead := &entity.NotificationEntity{
		ID:        notificationID,
		UserID:    "user-1",
		Message:   "New task assigned: Build landing page",
		Type:      entity.NotificationInfo,
		Read:      true,
		CreatedAt: time.Now(),
	}

	repo.On("MarkRead", ctx, notificationID).Return(alreadyRead, (*app_errors.AppError)(nil)).Twice()

	first, err := service.MarkRead(ctx, notificationID)
	assert.Nil(t, err)
	assert.True(t, first.Read)

	second, err := service.MarkRead(ctx, notificationID)
	assert.Nil(t, err)
	assert.True(t, second.Read)

	repo.AssertExpectations(t)
}

func TestMarkRead_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	service := &NotificationService{repo: repo}

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "notification_not_found", nil)

	repo.On("MarkRead", ctx, "n-missing").Return((*entity.NotificationEntity)(nil), notFound)

	resp, err := service.MarkRead(ctx, "n-missing")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "notification_not_found", err.MessageKey)

	repo.AssertExpectations(t)
}
