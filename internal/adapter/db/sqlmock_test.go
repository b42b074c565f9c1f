package db

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return sqlx.NewDb(conn, "mysql"), mock
}

var taskRowColumns = []string{
	"id", "project_id", "project_title", "title", "description",
	"is_completed", "due_date", "created_at", "updated_at",
}

var fixtureTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
