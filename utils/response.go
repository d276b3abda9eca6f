package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes data as the JSON response body
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageResponse writes a plain {message} body
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ErrorResponse writes an error as a {message} body with the given status
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
