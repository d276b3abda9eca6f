package routes

import (
	"TodoNest/controllers"
	"TodoNest/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	taskController := controllers.NewTaskController()

	root := router.Group("")
	{
		handlers.RegisterMetaRoutes(root)
		handlers.RegisterAuthRoutes(root, authController)
		handlers.RegisterTaskRoutes(root, taskController)
	}
}
