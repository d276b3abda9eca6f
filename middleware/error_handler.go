package middleware

import (
	"TodoNest/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware handles errors deferred by controllers globally
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check whether a controller attached an error to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			// CustomError carries its own status code
			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			// Anything else counts as an internal error
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
