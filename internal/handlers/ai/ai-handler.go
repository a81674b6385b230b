package ai_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/rouasschnibir-dot/pfe/internal/handlers"
	internal_i18n "github.com/rouasschnibir-dot/pfe/internal/i18n"
	ai_case "github.com/rouasschnibir-dot/pfe/internal/use-cases/ai-case"
)

type AIHandler struct {
	validator *validator.Validate
	service   ai_case.AIServiceContract
	i18n      *internal_i18n.I18nService
}

func NewAIHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *AIHandler {
	return &AIHandler{
		validator: validator.New(),
		service:   ai_case.NewAIService(db, redis),
		i18n:      i18n,
	}
}

func (h *AIHandler) EmployeeReport(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	// get employee id param
	employeeID, err := handlers.GetParamEmployeeID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.Report(c.Context(), employeeID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_recommendations", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
