package app_errors

import "fmt"

// AppError repräsentiert einen Anwendungsfehler mit einem Code, einer Nachricht und optional einem Feld.
type AppError struct {
	Code       int          // HTTP status code
	Type       string       // NOT_FOUND, INVALID_STATE, usw
	MessageKey string       // i18n key
	Details    []FieldError // optional (validation, state context)
	Err        error        // original error (internal only)
}

const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrInvalidBody  = "INVALID_BODY"
	ErrInvalidParam = "INVALID_PARAM"
	ErrInvalidQuery = "INVALID_QUERY"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN"
	ErrNotFound     = "NOT_FOUND"
	ErrConflict     = "CONFLICT"
	ErrInvalidState = "INVALID_STATE"
	ErrTaskLocked   = "TASK_LOCKED"
	ErrInternal     = "INTERNAL_ERROR"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

// NewInvalidStateError carries the task's current state pair so the edge can
// tell the user exactly why the operation was refused.
func NewInvalidStateError(status, validationStatus string) *AppError {
	return &AppError{
		Code:       409,
		Type:       ErrInvalidState,
		MessageKey: "conflict.task_not_awaiting_review",
		Details: []FieldError{
			{Field: "status", Reason: status, MessageKey: "task.current_status"},
			{Field: "validation_status", Reason: validationStatus, MessageKey: "task.current_validation_status"},
		},
		Err: fmt.Errorf("task state is (%s, %s), expected (Completed, Pending)", status, validationStatus),
	}
}

func NewTaskLockedError(status, validationStatus string) *AppError {
	return &AppError{
		Code:       409,
		Type:       ErrTaskLocked,
		MessageKey: "conflict.task_locked",
		Details: []FieldError{
			{Field: "status", Reason: status, MessageKey: "task.current_status"},
			{Field: "validation_status", Reason: validationStatus, MessageKey: "task.current_validation_status"},
		},
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.MessageKey
}
