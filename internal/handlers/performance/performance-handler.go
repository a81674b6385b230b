package performance_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/rouasschnibir-dot/pfe/internal/handlers"
	internal_i18n "github.com/rouasschnibir-dot/pfe/internal/i18n"
	performance_case "github.com/rouasschnibir-dot/pfe/internal/use-cases/performance-case"
)

type PerformanceHandler struct {
	validator *validator.Validate
	service   performance_case.PerformanceServiceContract
	i18n      *internal_i18n.I18nService
}

func NewPerformanceHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *PerformanceHandler {
	return &PerformanceHandler{
		validator: validator.New(),
		service:   performance_case.NewPerformanceService(db, redis),
		i18n:      i18n,
	}
}

func (h *PerformanceHandler) EmployeePerformance(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	// get employee id param
	employeeID, err := handlers.GetParamEmployeeID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.EmployeePerformance(c.Context(), employeeID)
	if err != nil {
		return err
	}

	// snapshots are cheap to recompute; short-lived client cache is enough
	c.Set("Cache-Control", "private, max-age=30")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_performance", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *PerformanceHandler) ProjectProgress(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	// get project id param
	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.ProjectProgress(c.Context(), projectID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_project_progress", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
