package handlers

import (
	"TodoNest/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes sets up the registration and login routes
func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	router.POST("/register", authController.RegisterUser)
	router.POST("/login", authController.LoginUser)
}
