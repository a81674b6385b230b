package worker_task

const TaskSendValidationResultEmail = "email:send_validation_result"

const TaskDeadlineReminders = "low:deadline_reminders"

type ValidationResultPayload struct {
	TaskID     string  `json:"task_id"`
	TaskTitle  string  `json:"task_title"`
	AssigneeID string  `json:"assignee_id"`
	Decision   string  `json:"decision"`
	Feedback   *string `json:"feedback,omitempty"`
}
