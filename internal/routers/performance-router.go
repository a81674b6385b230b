package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	ai_handlers "github.com/rouasschnibir-dot/pfe/internal/handlers/ai"
	performance_handlers "github.com/rouasschnibir-dot/pfe/internal/handlers/performance"
	"github.com/rouasschnibir-dot/pfe/internal/i18n"
	"github.com/rouasschnibir-dot/pfe/internal/middleware"
	"github.com/rouasschnibir-dot/pfe/internal/utils"
)

func PerformanceRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/performance", middleware.AuthMiddleware(paseto, redis))
	performanceHandler := performance_handlers.NewPerformanceHandler(db, redis, i18n)
	aiHandler := ai_handlers.NewAIHandler(db, redis, i18n)

	r.Get("/employee/:employee_id", performanceHandler.EmployeePerformance)
	r.Get("/project/:project_id", performanceHandler.ProjectProgress)
	r.Get("/employee/:employee_id/recommendations", middleware.RequireRoles("Manager", "Admin", "HR"), aiHandler.EmployeeReport)
}
