package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

const findOwnedTaskQuery = taskColumns + `WHERE t.id = ? AND p.user_id = ?`

const listUserTasksQuery = taskColumns + `WHERE p.user_id = ?
ORDER BY t.id ASC`

const insertTaskQuery = `
INSERT INTO tasks (project_id, title, description, is_completed, due_date)
VALUES (?, ?, ?, ?, ?)
`

const updateTaskQuery = `
UPDATE tasks t
INNER JOIN projects p ON p.id = t.project_id
SET t.project_id = ?, t.title = ?, t.description = ?, t.is_completed = ?, t.due_date = ?
WHERE t.id = ? AND p.user_id = ?
`

const setTaskCompletionQuery = `
UPDATE tasks t
INNER JOIN projects p ON p.id = t.project_id
SET t.is_completed = ?
WHERE t.id = ? AND p.user_id = ?
`

const deleteTaskQuery = `
DELETE t FROM tasks t
INNER JOIN projects p ON p.id = t.project_id
WHERE t.id = ? AND p.user_id = ?
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	ProjectID    uint64         `db:"project_id"`
	ProjectTitle string         `db:"project_title"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	IsCompleted  bool           `db:"is_completed"`
	DueDate      sql.NullTime   `db:"due_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindOwnedTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findOwnedTaskQuery, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, fmt.Errorf("find task %d: %w", taskID, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, int, error) {
	countQuery, countArgs := buildCountTasksQuery(query)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, query.PerPage)
	if total == 0 || query.Offset() >= total {
		return tasks, total, nil
	}

	listQuery, listArgs := buildListTasksQuery(query)
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, total, nil
}

// selectUserTasks returns every task of the user, used to attach tasks to
// their projects.
func selectUserTasks(ctx context.Context, db sqlx.QueryerContext, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, db, &rows, listUserTasksQuery, userID); err != nil {
		return nil, fmt.Errorf("list user tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.TaskInput) (uint64, error) {
	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		input.ProjectID,
		input.Title,
		input.Description,
		input.IsCompleted,
		input.DueDate,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return uint64(id), nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) error {
	_, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		input.ProjectID,
		input.Title,
		input.Description,
		input.IsCompleted,
		input.DueDate,
		taskID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", taskID, err)
	}
	return nil
}

func (r *TaskRepository) SetTaskCompletion(ctx context.Context, userID, taskID uint64, completed bool) error {
	if _, err := r.db.ExecContext(ctx, setTaskCompletionQuery, completed, taskID, userID); err != nil {
		return fmt.Errorf("set task %d completion: %w", taskID, err)
	}
	return nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		IsCompleted: row.IsCompleted,
		Project: domain.ProjectRef{
			ID:    row.ProjectID,
			Title: row.ProjectTitle,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}
