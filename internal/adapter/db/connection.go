package db

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/vickyalvandob/task/internal/config"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
)

// ConnectDB opens the MySQL pool. Time scanning is always enabled since the
// repositories read DATETIME and DATE columns into time.Time.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsnConf, err := mysql.ParseDSN(fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser, conf.DbPassword, conf.DbHost, conf.DbPort, conf.DbName, params,
	))
	if err != nil {
		return nil, fmt.Errorf("mysql dsn: %w", err)
	}
	dsnConf.ParseTime = true

	db, err := sqlx.Connect("mysql", dsnConf.FormatDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}
