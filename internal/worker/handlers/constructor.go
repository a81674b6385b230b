package worker_handler

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rouasschnibir-dot/pfe/internal/mail"
	notification_repo "github.com/rouasschnibir-dot/pfe/internal/repo/notification-repo"
	task_repo "github.com/rouasschnibir-dot/pfe/internal/repo/task-repo"
	user_repo "github.com/rouasschnibir-dot/pfe/internal/repo/user-repo"
)

type WorkerHandler struct {
	db     *pgxpool.Pool
	tr     task_repo.TaskRepoContract
	nr     notification_repo.NotificationRepoContract
	ur     user_repo.UserRepoContract
	mailer mail.Mailer
}

func NewWorkerHandler(db *pgxpool.Pool, mailer mail.Mailer) *WorkerHandler {
	return &WorkerHandler{
		db:     db,
		tr:     task_repo.NewTaskRepo(db),
		nr:     notification_repo.NewNotificationRepo(db),
		ur:     user_repo.NewUserRepo(db),
		mailer: mailer,
	}
}
