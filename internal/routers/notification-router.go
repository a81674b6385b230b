package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	notification_handlers "github.com/rouasschnibir-dot/pfe/internal/handlers/notification"
	"github.com/rouasschnibir-dot/pfe/internal/i18n"
	"github.com/rouasschnibir-dot/pfe/internal/middleware"
	"github.com/rouasschnibir-dot/pfe/internal/utils"
)

func NotificationRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/notification", middleware.AuthMiddleware(paseto, redis))
	notificationHandler := notification_handlers.NewNotificationHandler(db, i18n)

	r.Post("/create", middleware.RequireRoles("Manager", "Admin", "HR"), notificationHandler.CreateNotification)
	r.Get("/me", notificationHandler.ListMyNotifications)
	r.Get("/me/unread", notificationHandler.ListUnread)
	r.Patch("/:notification_id/read", notificationHandler.MarkRead)
}
