package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vickyalvandob/task/internal/adapter/http/handlers"
	"github.com/vickyalvandob/task/internal/adapter/http/middleware"
)

func TestHealthHandler_WithoutBackends(t *testing.T) {
	handler := handlers.NewHealthHandler(nil, nil)

	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	router.GET("/api/health", handler.CheckHealth)
	router.GET("/api/health/report", handler.CheckHealthReport)

	req, rec := newRawRequest(http.MethodGet, "/api/health")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var basic handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &basic))
	require.Equal(t, handlers.StatusDown, basic.Message)
	require.Equal(t, "dev", basic.AppVersion)

	req, rec = newRawRequest(http.MethodGet, "/api/health/report")
	req.Header.Set("Accept-Language", "fr-FR")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Equal(t, handlers.StatusDown, report.Status.Mysql)
	require.Equal(t, handlers.StatusDisabled, report.Status.Redis)
	require.Equal(t, "fr", report.Language)
}
