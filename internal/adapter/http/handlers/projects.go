package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vickyalvandob/task/internal/adapter/http/dto"
	"github.com/vickyalvandob/task/internal/adapter/http/mapper"
	"github.com/vickyalvandob/task/internal/adapter/http/middleware"
	"github.com/vickyalvandob/task/internal/adapter/http/validation"
	"github.com/vickyalvandob/task/internal/core/ports"
	"github.com/vickyalvandob/task/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidProjectPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailListProjects, "failed to list projects")
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), middleware.GetUserID(c), projectID)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidProjectPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailGetProject,
			"failed to get project", zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildProjectInput(req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidProjectPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailCreateProject, "invalid project payload")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidProjectPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailCreateProject, "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildProjectInput(req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidProjectPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailUpdateProject, "invalid project payload")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), middleware.GetUserID(c), projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidProjectPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailUpdateProject,
			"failed to update project", zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), middleware.GetUserID(c), projectID); err != nil {
		respondError(c, err, apierrors.MsgInvalidProjectPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailDeleteProject,
			"failed to delete project", zap.Uint64("project_id", projectID))
		return
	}

	c.Status(http.StatusNoContent)
}
