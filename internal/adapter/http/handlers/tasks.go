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

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	query, err := validation.BuildTaskQuery(
		middleware.GetUserID(c),
		c.Query("search"),
		c.Query("filter"),
		c.Query("page"),
	)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskQuery, apierrors.MsgTaskNotFound, apierrors.MsgFailListTasks, "failed to build task query")
		return
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskQuery, apierrors.MsgTaskNotFound, apierrors.MsgFailListTasks, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListResponse(page))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgTaskNotFound, apierrors.MsgFailGetTask,
			"failed to get task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailCreateTask, "invalid task payload")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgProjectNotFound, apierrors.MsgFailCreateTask,
			"failed to create task", zap.Uint64("project_id", input.ProjectID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgTaskNotFound, apierrors.MsgFailUpdateTask, "invalid task payload")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetUserID(c), taskID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgTaskNotFound, apierrors.MsgFailUpdateTask,
			"failed to update task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) SetTaskCompletion(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.TaskCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	completed, err := validation.BuildTaskCompletion(req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgTaskNotFound, apierrors.MsgFailUpdateTask, "invalid completion payload")
		return
	}

	task, err := h.taskService.SetTaskCompletion(c.Request.Context(), middleware.GetUserID(c), taskID, completed)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgTaskNotFound, apierrors.MsgFailUpdateTask,
			"failed to set task completion", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetUserID(c), taskID); err != nil {
		respondError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgTaskNotFound, apierrors.MsgFailDeleteTask,
			"failed to delete task", zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}
