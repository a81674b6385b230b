package task_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rouasschnibir-dot/pfe/internal/abstraction/tx"
	task_dto "github.com/rouasschnibir-dot/pfe/internal/dtos/task-dto"
	"github.com/rouasschnibir-dot/pfe/internal/entity"
	app_errors "github.com/rouasschnibir-dot/pfe/internal/errors"
)

type TaskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepo(db *pgxpool.Pool) TaskRepoContract {
	return &TaskRepo{
		db: db,
	}
}

const taskColumns = `
	t.id, t.project_id, p.title, t.title, t.description, t.status,
	t.validation_status, t.priority, t.assignee_id, t.created_by,
	t.deadline, t.completed_at, t.created_at, t.updated_at`

func scanTask(row pgx.Row) (*entity.TaskEntity, error) {
	var task entity.TaskEntity
	err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.ProjectTitle,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.ValidationStatus,
		&task.Priority,
		&task.AssigneeID,
		&task.CreatedBy,
		&task.Deadline,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	return &task, err
}

func (r *TaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	WHERE t.id = $1;
	`, taskColumns)

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "task_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return task, nil
}

func (r *TaskRepo) ListAll(ctx context.Context, filter *task_dto.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	WHERE 1 = 1
	`, taskColumns)

	args := []any{}
	argsPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND t.status = $%d", argsPos)
		args = append(args, filter.Status)
		argsPos++
	}

	if filter.AssigneeID != nil {
		query += fmt.Sprintf(" AND t.assignee_id = $%d", argsPos)
		args = append(args, filter.AssigneeID)
		argsPos++
	}

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND t.project_id = $%d", argsPos)
		args = append(args, filter.ProjectID)
		argsPos++
	}

	query += priorityOrder + " LIMIT $" + fmt.Sprint(argsPos) + " OFFSET $" + fmt.Sprint(argsPos+1) + ";"

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	return r.queryTasks(ctx, query, args...)
}

func (r *TaskRepo) ListByAssignee(ctx context.Context, assigneeID string) ([]entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	WHERE t.assignee_id = $1
	`, taskColumns) + priorityOrder + ";"

	return r.queryTasks(ctx, query, assigneeID)
}

func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	WHERE t.project_id = $1
	`, taskColumns) + priorityOrder + ";"

	return r.queryTasks(ctx, query, projectID)
}

// ListPendingReview returns tasks awaiting a decision, scoped to the projects
// the given manager owns. Critical work surfaces first.
func (r *TaskRepo) ListPendingReview(ctx context.Context, managerID string) ([]entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	WHERE p.manager_id = $1
		AND t.status = 'Completed'
		AND t.validation_status = 'Pending'
	`, taskColumns) + priorityOrder + ";"

	return r.queryTasks(ctx, query, managerID)
}

func (r *TaskRepo) ListDueSoon(ctx context.Context, within time.Duration) ([]entity.ReminderTask, *app_errors.AppError) {
	query := `
	SELECT t.id, t.project_id, p.title, t.title, t.status, t.priority,
		t.assignee_id, u.email, t.deadline
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	JOIN users u ON u.id = t.assignee_id
	WHERE t.deadline IS NOT NULL
		AND t.deadline BETWEEN now() AND now() + $1::interval
		AND t.status NOT IN ('Completed')
	ORDER BY t.deadline ASC;
	`

	rows, err := r.db.Query(ctx, query, within.String())
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.ReminderTask
	for rows.Next() {
		var result entity.ReminderTask
		if err := rows.Scan(&result.ID, &result.ProjectID, &result.ProjectTitle, &result.Title, &result.Status, &result.Priority, &result.AssigneeID, &result.AssigneeEmail, &result.Deadline); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *TaskRepo) InsertNewTask(ctx context.Context, task *entity.TaskEntity) *app_errors.AppError {
	query := `
	INSERT INTO tasks (
			id,
			project_id,
			title,
			description,
			status,
			validation_status,
			priority,
			assignee_id,
			created_by,
			deadline,
			created_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11
		);
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		task.ID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.Status,
		task.ValidationStatus,
		task.Priority,
		task.AssigneeID,
		task.CreatedBy,
		task.Deadline,
		task.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

// SetExecutionStatus moves a task along its execution lifecycle in a single
// guarded UPDATE. Moving to Completed flips the validation status to Pending
// and stamps completed_at; any other target clears a stale completion stamp.
// The WHERE clause refuses validated tasks, so a concurrent approval cannot
// be overwritten. No row updated means the task is locked (or gone, which the
// service has already ruled out by fetching it first).
func (r *TaskRepo) SetExecutionStatus(ctx context.Context, t tx.Tx, taskID string, status entity.TaskStatus) (*entity.TaskEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx

	query := fmt.Sprintf(`
	UPDATE tasks t
	SET status = $2,
		validation_status = CASE WHEN $2 = 'Completed' THEN 'Pending' ELSE 'None' END,
		completed_at = CASE WHEN $2 = 'Completed' THEN now() ELSE NULL END,
		updated_at = now()
	FROM projects p
	WHERE t.id = $1
		AND p.id = t.project_id
		AND t.validation_status != 'Validated'
		AND NOT (
			t.status = 'Completed'
			AND t.validation_status = 'Pending'
			AND t.completed_at < now() - interval '10 minutes'
		)
	RETURNING %s;
	`, taskColumns)

	task, err := scanTask(pgxTx.QueryRow(ctx, query, taskID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrTaskLocked, "conflict.task_locked", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return task, nil
}

// SetValidation records a manager's decision. The WHERE clause only matches
// tasks sitting in (Completed, Pending), so replays and races surface as no
// row instead of a double decision. A rejection reopens the task.
func (r *TaskRepo) SetValidation(ctx context.Context, t tx.Tx, taskID string, decision entity.ReviewDecision) (*entity.TaskEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx

	newValidation := entity.ValidationValidated
	if decision == entity.DecisionReject {
		newValidation = entity.ValidationRejected
	}

	query := fmt.Sprintf(`
	UPDATE tasks t
	SET validation_status = $2,
		status = CASE WHEN $2 = 'Rejected' THEN 'In_Progress' ELSE t.status END,
		completed_at = CASE WHEN $2 = 'Rejected' THEN NULL ELSE t.completed_at END,
		updated_at = now()
	FROM projects p
	WHERE t.id = $1
		AND p.id = t.project_id
		AND t.status = 'Completed'
		AND t.validation_status = 'Pending'
	RETURNING %s;
	`, taskColumns)

	task, err := scanTask(pgxTx.QueryRow(ctx, query, taskID, newValidation))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrInvalidState, "conflict.task_not_awaiting_review", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return task, nil
}

const priorityOrder = `
	ORDER BY CASE t.priority
		WHEN 'Critical' THEN 4
		WHEN 'High' THEN 3
		WHEN 'Medium' THEN 2
		WHEN 'Low' THEN 1
		ELSE 0
	END DESC, t.created_at DESC`

func (r *TaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]entity.TaskEntity, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.TaskEntity
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}
