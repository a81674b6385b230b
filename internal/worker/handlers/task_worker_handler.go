package worker_handler

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	worker_task "github.com/rouasschnibir-dot/pfe/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

const reminderWindow = 24 * time.Hour

// DeadlineReminders sweeps for tasks due within the next day and nudges their
// assignees twice, an in-app warning notification and an email.
func (wh *WorkerHandler) DeadlineReminders() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		tasks, err := wh.tr.ListDueSoon(ctx, reminderWindow)
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when list due tasks")
			return err
		}
		if len(tasks) == 0 {
			return nil
		}

		for _, task := range tasks {
			id, idErr := uuid.NewV7()
			if idErr != nil {
				log.Error().Err(idErr).Msg("Worker handler: Failed to generate notification id")
				continue
			}

			notification := &entity.NotificationEntity{
				ID:        id.String(),
				UserID:    task.AssigneeID,
				Message:   fmt.Sprintf("Task \"%s\" is due on %s.", task.Title, task.Deadline.Format("02 Jan 2006")),
				Type:      entity.NotificationWarning,
				Read:      false,
				CreatedAt: time.Now(),
			}

			if err := wh.nr.InsertNotification(ctx, notification); err != nil {
				log.Error().Err(err).Str("task_id", task.ID).Msg("Worker handler: Failed to insert reminder notification")
				continue
			}

			if mailErr := wh.mailer.SendDeadlineReminder(&task); mailErr != nil {
				log.Error().Err(mailErr).Str("task_id", task.ID).Msg("Worker handler: Error occured when trying to send email.")
				continue
			}
		}

		return nil
	}
}

func (wh *WorkerHandler) ValidationResultEmail() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Validation result email hit.")
		var p worker_task.ValidationResultPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return err
		}

		assignee, err := wh.ur.GetUserByID(ctx, p.AssigneeID)
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: error occured when fetch assignee info")
			return err
		}

		return wh.mailer.SendValidationResult(assignee.Email, p.TaskTitle, p.Decision, p.Feedback)
	}
}
