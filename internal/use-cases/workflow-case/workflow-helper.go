package workflow_case

import (
	"context"
	"time"

	"github.com/google/uuid"
	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	performance_case "github.com/rouasschnibir-dot/pfe/internal/use-cases/performance-case"
	"github.com/rs/zerolog/log"
)

func toTaskResponses(tasks []entity.TaskEntity) []*task_dto.TaskResponse {
	now := time.Now()
	responses := make([]*task_dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, task_dto.FromTaskEntity(&tasks[i], now))
	}
	return responses
}

// notifyUser inserts an in-app notification as a workflow side effect. Side
// effects never veto the transition itself, a failed insert is logged and the
// caller moves on.
func (s *WorkflowService) notifyUser(ctx context.Context, userID, message string, notificationType entity.NotificationType) {
	id, err := uuid.NewV7()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to generate notification id")
		return
	}

	notification := &entity.NotificationEntity{
		ID:        id.String(),
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if insertErr := s.notifications.InsertNotification(ctx, notification); insertErr != nil {
		log.Warn().Err(insertErr).Str("user_id", userID).Msg("Failed to insert workflow notification")
	}
}

// invalidatePerformance drops the cached snapshot after any task mutation
// touching the given assignee.
func (s *WorkflowService) invalidatePerformance(ctx context.Context, employeeID string) {
	if err := s.cache.Del(ctx, performance_case.EmployeeCacheKey(employeeID)); err != nil {
		log.Warn().Err(err).Str("employee_id", employeeID).Msg("Failed to invalidate performance cache")
	}
}
