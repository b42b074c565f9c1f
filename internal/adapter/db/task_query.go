package db

import (
	"strings"

	"github.com/vickyalvandob/task/internal/core/domain"
)

const taskColumns = `
SELECT
  t.id,
  t.project_id,
  p.title AS project_title,
  t.title,
  t.description,
  t.is_completed,
  t.due_date,
  t.created_at,
  t.updated_at
FROM tasks t
INNER JOIN projects p ON p.id = t.project_id
`

const countTasks = `
SELECT COUNT(*)
FROM tasks t
INNER JOIN projects p ON p.id = t.project_id
`

// taskFilterClause builds the WHERE clause shared by the count and page
// queries. Ownership scoping is always the first condition.
func taskFilterClause(q domain.TaskQuery) (string, []any) {
	conditions := []string{"p.user_id = ?"}
	args := []any{q.UserID}

	if q.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
		// The table collation ignores accents; compare lowered bytes instead.
		conditions = append(conditions, "(LOWER(t.title) COLLATE utf8mb4_bin LIKE ? OR LOWER(t.description) COLLATE utf8mb4_bin LIKE ?)")
		args = append(args, pattern, pattern)
	}

	switch q.Filter {
	case domain.TaskFilterCompleted:
		conditions = append(conditions, "t.is_completed = TRUE")
	case domain.TaskFilterPending:
		conditions = append(conditions, "t.is_completed = FALSE")
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func buildCountTasksQuery(q domain.TaskQuery) (string, []any) {
	where, args := taskFilterClause(q)
	return countTasks + where, args
}

func buildListTasksQuery(q domain.TaskQuery) (string, []any) {
	where, args := taskFilterClause(q)
	args = append(args, q.PerPage, q.Offset())
	return taskColumns + where + "\nORDER BY t.id ASC\nLIMIT ? OFFSET ?", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE treat s literally under MySQL's default escape
// character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
