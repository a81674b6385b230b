package routers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	task_handlers "github.com/rouasschnibir-dot/pfe/internal/handlers/task"
	"github.com/rouasschnibir-dot/pfe/internal/i18n"
	"github.com/rouasschnibir-dot/pfe/internal/middleware"
	"github.com/rouasschnibir-dot/pfe/internal/queue"
	"github.com/rouasschnibir-dot/pfe/internal/utils"
)

func TaskRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, q queue.NotifyQueueContract, cfgStorage CfgRedisStorage) {
	r := api.Group("/task", middleware.AuthMiddleware(paseto, redis))
	taskHandler := task_handlers.NewTaskHandler(db, redis, q, i18n)

	// prepare redis storage for rate limiter fiber
	redisAddr := strings.Split(redis.Options().Addr, ":") // seperate host and port
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     redisAddr[0],
		Password: redis.Options().Password,
		Port:     6379,
		Database: 1,
	})

	r.Post("/project/:project_id/create", taskHandler.CreateTask)
	r.Get("/list", taskHandler.ListTasks)
	r.Get("/me", taskHandler.ListMyTasks)
	r.Get("/pending-review", middleware.RequireRoles("Manager", "Admin"), taskHandler.PendingReview)
	r.Get("/project/:project_id/list", taskHandler.ListProjectTasks)
	r.Get("/:task_id", taskHandler.GetTask)
	r.Patch("/:task_id/status", taskHandler.UpdateStatus)
	r.Post("/:task_id/decide", middleware.RequireRoles("Manager", "Admin"), limiter.New(limiter.Config{
		Max:        10,
		Expiration: 5 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			userID := c.Locals("user_id")
			taskID := c.Params("task_id")
			if userID == nil {
				return "decide:ip:" + c.IP() // fallback to ip
			}
			return fmt.Sprintf("decide:%v:%s", userID, taskID)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	}), taskHandler.Decide)
}
