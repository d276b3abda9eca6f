package handlers

import (
	"TodoNest/controllers"
	"TodoNest/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTaskRoutes(router *gin.RouterGroup, taskController *controllers.TaskController) {
	taskGroup := router.Group("/tasks")
	{
		taskGroup.POST("/", middleware.AuthMiddleware(), taskController.CreateTask)
		taskGroup.GET("/", middleware.AuthMiddleware(), taskController.GetAllTasks)
		taskGroup.PUT("/:id", middleware.AuthMiddleware(), taskController.UpdateTask)
		taskGroup.DELETE("/:id", middleware.AuthMiddleware(), taskController.DeleteTask)
	}
}
