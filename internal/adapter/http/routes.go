package http

import (
	"github.com/gin-gonic/gin"

	"github.com/vickyalvandob/task/internal/adapter/http/handlers"
	"github.com/vickyalvandob/task/internal/adapter/http/middleware"
	"github.com/vickyalvandob/task/internal/core/ports"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
	Projects  *handlers.ProjectHandler
	Tasks     *handlers.TaskHandler
}

type Identity struct {
	Provider      ports.IdentityProvider
	SessionCookie string
}

func RegisterRoutes(r *gin.Engine, h Handlers, identity Identity) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	protected := api.Group("", middleware.RequireUser(identity.Provider, identity.SessionCookie))
	{
		protected.GET("/dashboard", h.Dashboard.Show)

		protected.GET("/projects", h.Projects.ListProjects)
		protected.POST("/projects", h.Projects.CreateProject)
		protected.GET("/projects/:id", h.Projects.GetProject)
		protected.PUT("/projects/:id", h.Projects.UpdateProject)
		protected.DELETE("/projects/:id", h.Projects.DeleteProject)

		protected.GET("/tasks", h.Tasks.ListTasks)
		protected.POST("/tasks", h.Tasks.CreateTask)
		protected.GET("/tasks/:id", h.Tasks.GetTask)
		protected.PUT("/tasks/:id", h.Tasks.UpdateTask)
		protected.PATCH("/tasks/:id/completion", h.Tasks.SetTaskCompletion)
		protected.DELETE("/tasks/:id", h.Tasks.DeleteTask)
	}
}
