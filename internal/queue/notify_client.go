package queue

import (
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	worker_task "github.com/rouasschnibir-dot/pfe/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

type NotifyQueueContract interface {
	EnqueueValidationResultEmail(payload *worker_task.ValidationResultPayload) error
}

type NotifyQueue struct {
	client *asynq.Client
}

func NewNotifyQueue(redis *redis.Client) NotifyQueueContract {
	return &NotifyQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *NotifyQueue) EnqueueValidationResultEmail(payload *worker_task.ValidationResultPayload) error {
	log.Info().Str("task_id", payload.TaskID).Msg("Preparing enqueueing payload.")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskSendValidationResultEmail, p, asynq.Queue("email"), asynq.MaxRetry(5))

	_, err := q.client.Enqueue(task)
	return err
}
