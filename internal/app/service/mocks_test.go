package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vickyalvandob/task/internal/core/domain"
)

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) FindOwnedProject(ctx context.Context, userID, projectID uint64) (domain.Project, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) ListProjectRefs(ctx context.Context, userID uint64) ([]domain.ProjectRef, error) {
	args := m.Called(ctx, userID)

	var refs []domain.ProjectRef
	if value := args.Get(0); value != nil {
		refs = value.([]domain.ProjectRef)
	}
	return refs, args.Error(1)
}

func (m *projectRepositoryMock) CreateProject(ctx context.Context, userID uint64, input domain.ProjectInput) (uint64, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *projectRepositoryMock) UpdateProject(ctx context.Context, userID, projectID uint64, input domain.ProjectInput) error {
	return m.Called(ctx, userID, projectID, input).Error(0)
}

func (m *projectRepositoryMock) DeleteProject(ctx context.Context, userID, projectID uint64) error {
	return m.Called(ctx, userID, projectID).Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) FindOwnedTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, int, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Int(1), args.Error(2)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.TaskInput) (uint64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) error {
	return m.Called(ctx, userID, taskID, input).Error(0)
}

func (m *taskRepositoryMock) SetTaskCompletion(ctx context.Context, userID, taskID uint64, completed bool) error {
	return m.Called(ctx, userID, taskID, completed).Error(0)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

type dashboardRepositoryMock struct {
	mock.Mock
}

func (m *dashboardRepositoryMock) Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

type dashboardCacheMock struct {
	mock.Mock
}

func (m *dashboardCacheMock) Get(ctx context.Context, userID uint64) (domain.DashboardStats, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DashboardStats), args.Bool(1), args.Error(2)
}

func (m *dashboardCacheMock) Generation(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *dashboardCacheMock) SetIfGeneration(ctx context.Context, userID uint64, generation int64, stats domain.DashboardStats) (bool, error) {
	args := m.Called(ctx, userID, generation, stats)
	return args.Bool(0), args.Error(1)
}

func (m *dashboardCacheMock) Invalidate(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

type statsInvalidatorMock struct {
	mock.Mock
}

func (m *statsInvalidatorMock) Invalidate(ctx context.Context, userID uint64) {
	m.Called(ctx, userID)
}
