package handlers

import (
	"net/http"

	"TodoNest/utils"

	"github.com/gin-gonic/gin"
)

// RegisterMetaRoutes sets up the unauthenticated informational routes
func RegisterMetaRoutes(router *gin.RouterGroup) {
	router.GET("/", func(c *gin.Context) {
		utils.MessageResponse(c, http.StatusOK, "Welcome to To-Do App!")
	})
	router.GET("/about", func(c *gin.Context) {
		utils.MessageResponse(c, http.StatusOK, "This is a To-Do App")
	})
}
