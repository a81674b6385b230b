package notification_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	notification_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/notification-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/rouasschnibir-dot/pfe/internal/handlers"
	internal_i18n "github.com/rouasschnibir-dot/pfe/internal/i18n"
	notification_case "github.com/rouasschnibir-dot/pfe/internal/use-cases/notification-case"
)

type NotificationHandler struct {
	validator *validator.Validate
	service   notification_case.NotificationServiceContract
	i18n      *internal_i18n.I18nService
}

func NewNotificationHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *NotificationHandler {
	validate := validator.New()
	validate.RegisterValidation("notificationType", notification_dto.IsValidNotificationType)
	return &NotificationHandler{
		validator: validate,
		service:   notification_case.NewNotificationService(db),
		i18n:      i18n,
	}
}

func (h *NotificationHandler) CreateNotification(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	// get req body
	var req *notification_dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_notification", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) ListMyNotifications(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ListFor(c.Context(), userID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_notifications", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) ListUnread(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.UnreadFor(c.Context(), userID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_notifications", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	// get notification id param
	notificationID, err := handlers.GetParamNotificationID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.MarkRead(c.Context(), notificationID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_mark_read", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
