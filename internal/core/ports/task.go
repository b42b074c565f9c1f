package ports

import (
	"context"

	"github.com/vickyalvandob/task/internal/core/domain"
)

type TaskRepository interface {
	FindOwnedTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, int, error)
	CreateTask(ctx context.Context, input domain.TaskInput) (uint64, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) error
	SetTaskCompletion(ctx context.Context, userID, taskID uint64, completed bool) error
	DeleteTask(ctx context.Context, userID, taskID uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, userID uint64, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) (domain.Task, error)
	SetTaskCompletion(ctx context.Context, userID, taskID uint64, completed bool) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
}
