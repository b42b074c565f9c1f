package service

import (
	"context"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

type ProjectService struct {
	guard             *OwnershipGuard
	projectRepository ports.ProjectRepository
	stats             ports.StatsInvalidator
}

func NewProjectService(guard *OwnershipGuard, projectRepository ports.ProjectRepository, stats ports.StatsInvalidator) *ProjectService {
	return &ProjectService{guard: guard, projectRepository: projectRepository, stats: stats}
}

func (s *ProjectService) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	return s.projectRepository.ListProjects(ctx, userID)
}

func (s *ProjectService) GetProject(ctx context.Context, userID, projectID uint64) (domain.Project, error) {
	return s.guard.Project(ctx, userID, projectID)
}

func (s *ProjectService) CreateProject(ctx context.Context, userID uint64, input domain.ProjectInput) (domain.Project, error) {
	projectID, err := s.projectRepository.CreateProject(ctx, userID, input)
	if err != nil {
		return domain.Project{}, err
	}
	s.stats.Invalidate(ctx, userID)

	return s.guard.Project(ctx, userID, projectID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, userID, projectID uint64, input domain.ProjectInput) (domain.Project, error) {
	if _, err := s.guard.Project(ctx, userID, projectID); err != nil {
		return domain.Project{}, err
	}

	if err := s.projectRepository.UpdateProject(ctx, userID, projectID, input); err != nil {
		return domain.Project{}, err
	}

	return s.guard.Project(ctx, userID, projectID)
}

func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID uint64) error {
	if _, err := s.guard.Project(ctx, userID, projectID); err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(ctx, userID, projectID); err != nil {
		return err
	}
	s.stats.Invalidate(ctx, userID)
	return nil
}

var _ ports.ProjectService = (*ProjectService)(nil)
