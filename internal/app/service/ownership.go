package service

import (
	"context"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

// OwnershipGuard resolves projects and tasks on behalf of a user. A resource
// owned by someone else is reported exactly like a missing one.
type OwnershipGuard struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

func NewOwnershipGuard(projects ports.ProjectRepository, tasks ports.TaskRepository) *OwnershipGuard {
	return &OwnershipGuard{projects: projects, tasks: tasks}
}

func (g *OwnershipGuard) Project(ctx context.Context, userID, projectID uint64) (domain.Project, error) {
	if userID == 0 || projectID == 0 {
		return domain.Project{}, domain.ErrNotFound
	}
	return g.projects.FindOwnedProject(ctx, userID, projectID)
}

func (g *OwnershipGuard) Task(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	if userID == 0 || taskID == 0 {
		return domain.Task{}, domain.ErrNotFound
	}
	return g.tasks.FindOwnedTask(ctx, userID, taskID)
}
