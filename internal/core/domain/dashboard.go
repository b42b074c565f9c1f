package domain

type DashboardStats struct {
	TotalProjects  int
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
}

// NewDashboardStats derives the pending count so that
// TotalTasks == CompletedTasks + PendingTasks.
func NewDashboardStats(totalProjects, totalTasks, completedTasks int) DashboardStats {
	return DashboardStats{
		TotalProjects:  totalProjects,
		TotalTasks:     totalTasks,
		CompletedTasks: completedTasks,
		PendingTasks:   totalTasks - completedTasks,
	}
}
