package task_handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
	"github.com/rouasschnibir-dot/pfe/internal/handlers"
	internal_i18n "github.com/rouasschnibir-dot/pfe/internal/i18n"
	"github.com/rouasschnibir-dot/pfe/internal/queue"
	workflow_case "github.com/rouasschnibir-dot/pfe/internal/use-cases/workflow-case"
)

type TaskHandler struct {
	validator *validator.Validate
	service   workflow_case.WorkflowServiceContract
	i18n      *internal_i18n.I18nService
}

func NewTaskHandler(db *pgxpool.Pool, redis *redis.Client, q queue.NotifyQueueContract, i18n *internal_i18n.I18nService) *TaskHandler {
	validate := validator.New()
	validate.RegisterValidation("taskStatus", task_dto.IsValidTaskStatus)
	validate.RegisterValidation("taskPriority", task_dto.IsValidTaskPriority)
	validate.RegisterValidation("reviewDecision", task_dto.IsValidReviewDecision)
	return &TaskHandler{
		validator: validate,
		service:   workflow_case.NewWorkflowService(db, redis, q),
		i18n:      i18n,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	// get project id from param
	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	// get req body
	var req *task_dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.Priority != nil {
		s := strings.Title(strings.TrimSpace(*req.Priority))
		req.Priority = &s
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.CreateTask(c.Context(), userID, projectID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_task", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetTask(c.Context(), taskID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_task_detail", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	// get query filter
	var filter task_dto.TaskListFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if filter.Status != nil {
		s := handlers.NormalizeStatusCase(*filter.Status)
		filter.Status = &s
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	} else if filter.Limit > 100 {
		filter.Limit = 100
	}

	if filter.Page == 0 {
		filter.Page = 1
	} else if filter.Page > 100 {
		filter.Page = 100
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.ListAll(c.Context(), &filter)
	if err != nil {
		return err
	}

	// set http cache behavior
	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_tasks", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TaskHandler) ListMyTasks(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ListByAssignee(c.Context(), userID)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_tasks", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TaskHandler) ListProjectTasks(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.ListByProject(c.Context(), projectID)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_tasks", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	// get task id param
	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	// get req body
	var req *task_dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.Status != "" {
		req.Status = handlers.NormalizeStatusCase(req.Status)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.SubmitExecutionUpdate(c.Context(), userID, taskID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_status", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TaskHandler) Decide(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	// get task id param
	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	// get req body
	var req *task_dto.DecideRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.Decision != "" {
		req.Decision = strings.ToLower(strings.TrimSpace(req.Decision))
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// call service
	resp, err := h.service.Decide(c.Context(), userID, taskID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_decide", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *TaskHandler) PendingReview(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.PendingForManager(c.Context(), userID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_pending_review", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
