package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rouasschnibir-dot/pfe/internal/i18n"
	"github.com/rouasschnibir-dot/pfe/internal/queue"
	"github.com/rouasschnibir-dot/pfe/internal/utils"
)

type CfgRedisStorage struct {
	Host     string
	Password string
}

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, q queue.NotifyQueueContract, cfgStorage CfgRedisStorage) {
	api := app.Group("/api/v1")

	TaskRouter(api, db, redis, i18n, paseto, q, cfgStorage)
	NotificationRouter(api, db, redis, i18n, paseto)
	PerformanceRouter(api, db, redis, i18n, paseto)
	HealthRouter(api, db, redis)
}
