package notification_dto

import (
	"time"

	"github.com/rouasschnibir-dot/pfe/internal/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

func FromNotificationEntity(n *entity.NotificationEntity) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
