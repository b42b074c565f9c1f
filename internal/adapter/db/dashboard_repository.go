package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

// Both counts come from one statement so they describe the same snapshot.
const dashboardStatsQuery = `
SELECT
  (SELECT COUNT(*) FROM projects WHERE user_id = ?) AS total_projects,
  COUNT(t.id) AS total_tasks,
  COALESCE(SUM(CASE WHEN t.is_completed THEN 1 ELSE 0 END), 0) AS completed_tasks
FROM tasks t
INNER JOIN projects p ON p.id = t.project_id
WHERE p.user_id = ?
`

type DashboardRepository struct {
	db *sqlx.DB
}

type dashboardRow struct {
	TotalProjects  int `db:"total_projects"`
	TotalTasks     int `db:"total_tasks"`
	CompletedTasks int `db:"completed_tasks"`
}

var _ ports.DashboardRepository = (*DashboardRepository)(nil)

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error) {
	var row dashboardRow
	if err := r.db.GetContext(ctx, &row, dashboardStatsQuery, userID, userID); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return domain.NewDashboardStats(row.TotalProjects, row.TotalTasks, row.CompletedTasks), nil
}
