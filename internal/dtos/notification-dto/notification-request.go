package notification_dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
)

type CreateNotificationRequest struct {
	UserID  string  `json:"user_id" validate:"required"`
	Message string  `json:"message" validate:"required,min=3"`
	Type    *string `json:"type,omitempty" validate:"omitempty,notificationType"`
}

type ParamNotificationID struct {
	ID string `params:"notification_id" validate:"required,uuid"`
}

func IsValidNotificationType(fl validator.FieldLevel) bool {
	return entity.NotificationType(fl.Field().String()).IsValid()
}
