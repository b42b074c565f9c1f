package mapper

import (
	"time"

	"github.com/vickyalvandob/task/internal/adapter/http/dto"
	"github.com/vickyalvandob/task/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID,
		Title:     project.Title,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	if project.Tasks != nil {
		item.Tasks = ToTaskItems(project.Tasks)
	}

	return item
}

func ToDashboardResponse(stats domain.DashboardStats) dto.DashboardResponse {
	return dto.DashboardResponse{
		Stats: dto.DashboardStats{
			TotalProjects:  stats.TotalProjects,
			TotalTasks:     stats.TotalTasks,
			CompletedTasks: stats.CompletedTasks,
			PendingTasks:   stats.PendingTasks,
		},
	}
}
