package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cacheadapter "github.com/vickyalvandob/task/internal/adapter/cache"
	dbadapter "github.com/vickyalvandob/task/internal/adapter/db"
	httpadapter "github.com/vickyalvandob/task/internal/adapter/http"
	"github.com/vickyalvandob/task/internal/adapter/http/handlers"
	httpmiddleware "github.com/vickyalvandob/task/internal/adapter/http/middleware"
	"github.com/vickyalvandob/task/internal/adapter/session"
	appservice "github.com/vickyalvandob/task/internal/app/service"
	"github.com/vickyalvandob/task/internal/config"
	"github.com/vickyalvandob/task/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  os.Getenv("TRANSLATION_FOLDER"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if cfg.RedisAddr == "" {
		logger.Fatal("REDIS_ADDR is required to resolve sessions")
	}
	rdb, err := cacheadapter.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	projectRepository := dbadapter.NewProjectRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	dashboardRepository := dbadapter.NewDashboardRepository(db)

	guard := appservice.NewOwnershipGuard(projectRepository, taskRepository)
	dashboardService := appservice.NewDashboardService(
		dashboardRepository,
		cacheadapter.NewDashboardCache(rdb, cfg.DashboardCacheTTL),
	)
	projectService := appservice.NewProjectService(guard, projectRepository, dashboardService)
	taskService := appservice.NewTaskService(guard, projectRepository, taskRepository, dashboardService, cfg.TasksPerPage)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestID(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db, rdb),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Projects:  handlers.NewProjectHandler(projectService),
		Tasks:     handlers.NewTaskHandler(taskService),
	}, httpadapter.Identity{
		Provider:      session.NewStore(rdb),
		SessionCookie: cfg.SessionCookie,
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
