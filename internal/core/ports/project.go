package ports

import (
	"context"

	"github.com/vickyalvandob/task/internal/core/domain"
)

type ProjectRepository interface {
	FindOwnedProject(ctx context.Context, userID, projectID uint64) (domain.Project, error)
	ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error)
	ListProjectRefs(ctx context.Context, userID uint64) ([]domain.ProjectRef, error)
	CreateProject(ctx context.Context, userID uint64, input domain.ProjectInput) (uint64, error)
	UpdateProject(ctx context.Context, userID, projectID uint64, input domain.ProjectInput) error
	// DeleteProject removes the project and its tasks atomically.
	DeleteProject(ctx context.Context, userID, projectID uint64) error
}

type ProjectService interface {
	ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error)
	GetProject(ctx context.Context, userID, projectID uint64) (domain.Project, error)
	CreateProject(ctx context.Context, userID uint64, input domain.ProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, userID, projectID uint64, input domain.ProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, userID, projectID uint64) error
}
