package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/vickyalvandob/task/db/migrations"
)

// Migrate applies every pending embedded migration.
func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Reset rolls every migration back and applies them again.
func Reset(db *sqlx.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Reset(db.DB, "."); err != nil {
		return fmt.Errorf("goose reset: %w", err)
	}
	return Migrate(db)
}
