package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rouasschnibir-dot/pfe/internal/config"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendValidationResult(to, taskTitle, decision string, feedback *string) error
	SendDeadlineReminder(task *entity.ReminderTask) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	return &MailService{
		DomainSender: cfg.MAILTRAP.Domain,
		MailtrapUrl:  cfg.MAILTRAP.URL,
		MailAPI:      cfg.MAILTRAP.Token,
	}
}

func (m *MailService) SendValidationResult(to, taskTitle, decision string, feedback *string) error {
	log.Info().Msg("Mailer: Send validation result email hit.")

	var subject, text string
	if decision == string(entity.DecisionApprove) {
		subject = fmt.Sprintf("Task approved: %s", taskTitle)
		text = fmt.Sprintf(`
		Hi,

		Good news, your task "%s" has been reviewed and approved by your manager.

		No further action is needed for this task.

		— PFE Dashboard
		`, taskTitle)
	} else {
		note := "No feedback was provided."
		if feedback != nil {
			note = *feedback
		}
		subject = fmt.Sprintf("Task needs rework: %s", taskTitle)
		text = fmt.Sprintf(`
		Hi,

		Your task "%s" was reviewed and sent back for rework.

		Manager feedback:
		%s

		The task has been moved back to In Progress. Please address the feedback and complete it again.

		— PFE Dashboard
		`, taskTitle, note)
	}

	return m.post(to, subject, text, "Task Validation")
}

func (m *MailService) SendDeadlineReminder(task *entity.ReminderTask) error {
	subject := fmt.Sprintf("Deadline approaching: %s (%s)", task.Title, task.ProjectTitle)
	text := fmt.Sprintf(`
	Hi,

	A task assigned to you is approaching its deadline.

	Project : %s
	Task    : %s
	Status  : %s
	Priority: %s
	Due at  : %s

	Please make sure the task progress is up to date, or flag blockers early so your manager can help.

	— PFE Dashboard
	`, task.ProjectTitle, task.Title, task.Status, task.Priority, task.Deadline.Format("02 Jan 2006 15:04 MST"))

	return m.post(task.AssigneeEmail, subject, text, "Deadline Reminder")
}

func (m *MailService) post(to, subject, text, category string) error {
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "PFE Dashboard",
		},
		"to": []map[string]string{
			{
				"email": to,
			},
		},
		"subject":  subject,
		"text":     text,
		"category": category,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error when marshalling payload body.")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Error when send the request.")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error when get response from server.")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}
