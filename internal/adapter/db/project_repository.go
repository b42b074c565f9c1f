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

const projectColumns = `
SELECT id, user_id, title, description, created_at, updated_at
FROM projects
`

const findOwnedProjectQuery = projectColumns + `WHERE id = ? AND user_id = ?`

const listProjectsQuery = projectColumns + `WHERE user_id = ?
ORDER BY id ASC`

const listProjectRefsQuery = `
SELECT id, title
FROM projects
WHERE user_id = ?
ORDER BY title ASC, id ASC
`

const insertProjectQuery = `
INSERT INTO projects (user_id, title, description)
VALUES (?, ?, ?)
`

const updateProjectQuery = `
UPDATE projects
SET title = ?, description = ?
WHERE id = ? AND user_id = ?
`

const deleteProjectTasksQuery = `
DELETE t FROM tasks t
INNER JOIN projects p ON p.id = t.project_id
WHERE p.id = ? AND p.user_id = ?
`

const deleteProjectQuery = `
DELETE FROM projects
WHERE id = ? AND user_id = ?
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRefRow struct {
	ID    uint64 `db:"id"`
	Title string `db:"title"`
}

type projectRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) FindOwnedProject(ctx context.Context, userID, projectID uint64) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, findOwnedProjectQuery, projectID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrNotFound
		}
		return domain.Project{}, fmt.Errorf("find project %d: %w", projectID, err)
	}
	return mapProjectRowToDomainProject(row), nil
}

// ListProjects returns the projects of the user with their tasks attached.
func (r *ProjectRepository) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listProjectsQuery, userID); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	if len(rows) == 0 {
		return projects, nil
	}

	tasks, err := selectUserTasks(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}

	byProject := make(map[uint64][]domain.Task, len(rows))
	for _, task := range tasks {
		byProject[task.Project.ID] = append(byProject[task.Project.ID], task)
	}

	for _, row := range rows {
		project := mapProjectRowToDomainProject(row)
		project.Tasks = byProject[project.ID]
		if project.Tasks == nil {
			project.Tasks = []domain.Task{}
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// ListProjectRefs returns id and title of every project of the user, for
// pickers that do not need the tasks.
func (r *ProjectRepository) ListProjectRefs(ctx context.Context, userID uint64) ([]domain.ProjectRef, error) {
	var rows []projectRefRow
	if err := r.db.SelectContext(ctx, &rows, listProjectRefsQuery, userID); err != nil {
		return nil, fmt.Errorf("list project refs: %w", err)
	}

	refs := make([]domain.ProjectRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, domain.ProjectRef{ID: row.ID, Title: row.Title})
	}
	return refs, nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, userID uint64, input domain.ProjectInput) (uint64, error) {
	result, err := r.db.ExecContext(ctx, insertProjectQuery, userID, input.Title, input.Description)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	return uint64(id), nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, userID, projectID uint64, input domain.ProjectInput) error {
	if _, err := r.db.ExecContext(ctx, updateProjectQuery, input.Title, input.Description, projectID, userID); err != nil {
		return fmt.Errorf("update project %d: %w", projectID, err)
	}
	return nil
}

// DeleteProject removes the tasks and then the project in one transaction,
// so a failure leaves both untouched.
func (r *ProjectRepository) DeleteProject(ctx context.Context, userID, projectID uint64) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete project %d: begin: %w", projectID, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteProjectTasksQuery, projectID, userID); err != nil {
		return fmt.Errorf("delete project %d tasks: %w", projectID, err)
	}

	result, err := tx.ExecContext(ctx, deleteProjectQuery, projectID, userID)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", projectID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project %d: %w", projectID, err)
	}
	if affected == 0 {
		err = domain.ErrNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("delete project %d: commit: %w", projectID, err)
	}
	return nil
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	return project
}
