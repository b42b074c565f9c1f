package mapper

import (
	"time"

	"github.com/vickyalvandob/task/internal/adapter/http/dto"
	"github.com/vickyalvandob/task/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		IsCompleted: task.IsCompleted,
		ProjectID:   task.Project.ID,
		Project: dto.ProjectRef{
			ID:    task.Project.ID,
			Title: task.Project.Title,
		},
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dateLayout)
		item.DueDate = &value
	}

	return item
}

func ToTaskListResponse(page domain.TaskPage) dto.TaskListResponse {
	return dto.TaskListResponse{
		Data:        ToTaskItems(page.Tasks),
		CurrentPage: page.Pagination.CurrentPage,
		LastPage:    page.Pagination.LastPage,
		PerPage:     page.Pagination.PerPage,
		Total:       page.Pagination.Total,
		From:        page.Pagination.From,
		To:          page.Pagination.To,
		Filters: dto.TaskFilters{
			Search: page.Search,
			Filter: string(page.Filter),
		},
		Projects: ToProjectRefs(page.Projects),
	}
}

func ToProjectRefs(refs []domain.ProjectRef) []dto.ProjectRef {
	out := make([]dto.ProjectRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, dto.ProjectRef{ID: ref.ID, Title: ref.Title})
	}
	return out
}
