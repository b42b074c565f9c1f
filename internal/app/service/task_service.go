package service

import (
	"context"
	"strings"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

const DefaultTasksPerPage = 10

type TaskService struct {
	guard             *OwnershipGuard
	projectRepository ports.ProjectRepository
	taskRepository    ports.TaskRepository
	stats             ports.StatsInvalidator
	perPage           int
}

func NewTaskService(guard *OwnershipGuard, projectRepository ports.ProjectRepository, taskRepository ports.TaskRepository, stats ports.StatsInvalidator, perPage int) *TaskService {
	if perPage < 1 {
		perPage = DefaultTasksPerPage
	}
	return &TaskService{
		guard:             guard,
		projectRepository: projectRepository,
		taskRepository:    taskRepository,
		stats:             stats,
		perPage:           perPage,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error) {
	query.Search = strings.TrimSpace(query.Search)
	if query.Filter == "" {
		query.Filter = domain.TaskFilterAll
	}
	if query.Page < 1 {
		query.Page = 1
	}
	query.PerPage = s.perPage

	tasks, total, err := s.taskRepository.ListTasks(ctx, query)
	if err != nil {
		return domain.TaskPage{}, err
	}

	projects, err := s.projectRepository.ListProjectRefs(ctx, query.UserID)
	if err != nil {
		return domain.TaskPage{}, err
	}

	return domain.TaskPage{
		Tasks:      tasks,
		Pagination: domain.NewPagination(total, query.Page, query.PerPage),
		Search:     query.Search,
		Filter:     query.Filter,
		Projects:   projects,
	}, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return s.guard.Task(ctx, userID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.TaskInput) (domain.Task, error) {
	if _, err := s.guard.Project(ctx, userID, input.ProjectID); err != nil {
		return domain.Task{}, err
	}

	taskID, err := s.taskRepository.CreateTask(ctx, input)
	if err != nil {
		return domain.Task{}, err
	}
	s.stats.Invalidate(ctx, userID)

	return s.guard.Task(ctx, userID, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) (domain.Task, error) {
	if _, err := s.guard.Task(ctx, userID, taskID); err != nil {
		return domain.Task{}, err
	}
	// Moving a task is only allowed into another project of the same user.
	if _, err := s.guard.Project(ctx, userID, input.ProjectID); err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.UpdateTask(ctx, userID, taskID, input); err != nil {
		return domain.Task{}, err
	}
	s.stats.Invalidate(ctx, userID)

	return s.guard.Task(ctx, userID, taskID)
}

func (s *TaskService) SetTaskCompletion(ctx context.Context, userID, taskID uint64, completed bool) (domain.Task, error) {
	if _, err := s.guard.Task(ctx, userID, taskID); err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.SetTaskCompletion(ctx, userID, taskID, completed); err != nil {
		return domain.Task{}, err
	}
	s.stats.Invalidate(ctx, userID)

	return s.guard.Task(ctx, userID, taskID)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	if _, err := s.guard.Task(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, userID, taskID); err != nil {
		return err
	}
	s.stats.Invalidate(ctx, userID)
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
