package dto

type DashboardStats struct {
	TotalProjects  int `json:"total_projects"`
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
}

type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`
}
