package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vickyalvandob/task/internal/adapter/http/middleware"
	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/pkg/apierrors"
	"github.com/vickyalvandob/task/pkg/translator"
)

const (
	testUserID       uint64 = 1
	testSessionToken        = "alice-session"
	testSessionCookie       = "session_id"
)

// identityStub accepts a single session token.
type identityStub struct{}

func (identityStub) UserID(_ context.Context, token string) (uint64, error) {
	if token == testSessionToken {
		return testUserID, nil
	}
	return 0, domain.ErrUnauthenticated
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware(), middleware.RequireUser(identityStub{}, testSessionCookie))
	return router
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+testSessionToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.Err {
	t.Helper()

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got.ErrDetails
}

func requireErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) apierrors.Err {
	t.Helper()

	require.Equal(t, code, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, code, got.Code)
	require.Equal(t, message, got.Message)
	return got
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, query domain.TaskQuery) (domain.TaskPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.TaskPage), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID uint64, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetTaskCompletion(ctx context.Context, userID, taskID uint64, completed bool) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, completed)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, userID, projectID uint64) (domain.Project, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, userID uint64, input domain.ProjectInput) (domain.Project, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, userID, projectID uint64, input domain.ProjectInput) (domain.Project, error) {
	args := m.Called(ctx, userID, projectID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, userID, projectID uint64) error {
	return m.Called(ctx, userID, projectID).Error(0)
}

type dashboardServiceMock struct {
	mock.Mock
}

func (m *dashboardServiceMock) Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

func requireNoBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
}

// newRawRequest builds a request without session credentials.
func newRawRequest(method, target string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	return req, httptest.NewRecorder()
}
