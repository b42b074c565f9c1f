//go:build integration
// +build integration

package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/vickyalvandob/task/internal/adapter/db"
	httpadapter "github.com/vickyalvandob/task/internal/adapter/http"
	"github.com/vickyalvandob/task/internal/adapter/http/handlers"
	appservice "github.com/vickyalvandob/task/internal/app/service"
	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/pkg/translator"
)

const (
	aliceToken = "alice-token"
	bobToken   = "bob-token"
)

// sessions maps fixed tokens to the users seeded by ResetDatabase.
type sessions map[string]uint64

func (s sessions) UserID(_ context.Context, token string) (uint64, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, domain.ErrUnauthenticated
}

type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
	router     *gin.Engine
	aliceID    uint64
	bobID      uint64
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "task")+"_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true")

	adminDB, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, database, params))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

// SetupTest rebuilds the schema, seeds two users and wires the full router
// without Redis.
func (s *IntegrationSuiteBase) SetupTest() {
	s.ResetDatabase()
	s.aliceID = s.seedUser("Alice", "alice@example.com")
	s.bobID = s.seedUser("Bob", "bob@example.com")

	projectRepository := dbadapter.NewProjectRepository(s.DB)
	taskRepository := dbadapter.NewTaskRepository(s.DB)
	guard := appservice.NewOwnershipGuard(projectRepository, taskRepository)
	dashboardService := appservice.NewDashboardService(dbadapter.NewDashboardRepository(s.DB), nil)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(s.DB, nil),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Projects:  handlers.NewProjectHandler(appservice.NewProjectService(guard, projectRepository, dashboardService)),
		Tasks:     handlers.NewTaskHandler(appservice.NewTaskService(guard, projectRepository, taskRepository, dashboardService, appservice.DefaultTasksPerPage)),
	}, httpadapter.Identity{
		Provider:      sessions{aliceToken: s.aliceID, bobToken: s.bobID},
		SessionCookie: "session_id",
	})
	s.router = router
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	s.Require().NoError(dbadapter.Reset(s.DB))
}

func (s *IntegrationSuiteBase) seedUser(name, email string) uint64 {
	result, err := s.DB.Exec("INSERT INTO users (name, email) VALUES (?, ?)", name, email)
	s.Require().NoError(err)
	id, err := result.LastInsertId()
	s.Require().NoError(err)
	return uint64(id)
}

func (s *IntegrationSuiteBase) do(token, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// doJSON performs the request, checks the status and decodes the body.
func (s *IntegrationSuiteBase) doJSON(token, method, target, body string, wantStatus int, out any) {
	rec := s.do(token, method, target, body)
	s.Require().Equal(wantStatus, rec.Code, rec.Body.String())
	if out != nil {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

