package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/vickyalvandob/task/internal/adapter/http/middleware"
)

const (
	StatusOk       = "ok"
	StatusDown     = "down"
	StatusDisabled = "disabled"

	healthTimeout   = 2 * time.Second
	healthTimestamp = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Mysql string `json:"mysql"`
	Redis string `json:"redis"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

// HealthHandler reports liveness of MySQL and, when configured, Redis.
// Only MySQL decides the status code of the basic check.
type HealthHandler struct {
	db  *sqlx.DB
	rdb *redis.Client
}

func NewHealthHandler(db *sqlx.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := h.mysqlStatus(c.Request.Context())

	code := http.StatusOK
	if status != StatusOk {
		code = http.StatusInternalServerError
	}

	c.JSON(code, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        appVersion(),
		CurrentSystemTime: time.Now().Format(healthTimestamp),
		Message:           status,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        appVersion(),
		CurrentSystemTime: time.Now().Format(healthTimestamp),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Mysql: h.mysqlStatus(ctx),
			Redis: h.redisStatus(ctx),
		},
	})
}

func (h *HealthHandler) mysqlStatus(ctx context.Context) string {
	if h.db == nil {
		return StatusDown
	}
	return pingStatus(ctx, h.db.PingContext)
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.rdb == nil {
		return StatusDisabled
	}
	return pingStatus(ctx, func(ctx context.Context) error { return h.rdb.Ping(ctx).Err() })
}

// pingStatus runs ping under healthTimeout so a stalled backend cannot hang the
// endpoint.
func pingStatus(ctx context.Context, ping func(context.Context) error) string {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		return StatusDown
	}
	return StatusOk
}

func appVersion() string {
	if version := os.Getenv("APP_VERSION"); version != "" {
		return version
	}
	return "dev"
}
