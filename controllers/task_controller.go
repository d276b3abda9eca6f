package controllers

import (
	"net/http"
	"strconv"

	"TodoNest/models"
	"TodoNest/services"
	"TodoNest/utils"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *services.TaskService
}

func NewTaskController() *TaskController {
	return &TaskController{
		TaskService: services.NewTaskService(),
	}
}

func (t *TaskController) CreateTask(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := t.TaskService.CreateTask(c.Request.Context(), userID.(uint), req)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, task)
}

func (t *TaskController) GetAllTasks(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	tasks, err := t.TaskService.GetAllTasks(c.Request.Context(), userID.(uint))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, tasks)
}

func (t *TaskController) UpdateTask(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req models.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := t.TaskService.UpdateTask(c.Request.Context(), userID.(uint), uint(taskID), req)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, task)
}

func (t *TaskController) DeleteTask(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := t.TaskService.DeleteTask(c.Request.Context(), userID.(uint), uint(taskID)); err != nil {
		c.Error(err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Task deleted successfully")
}
