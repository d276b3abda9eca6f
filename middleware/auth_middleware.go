package middleware

import (
	"errors"
	"net/http"
	"strings"

	"TodoNest/services"
	"TodoNest/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware resolves the bearer token to a user and injects it into
// the request context. Requests without a valid token are rejected.
func AuthMiddleware() gin.HandlerFunc {
	userService := services.NewUserService()

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		username, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := userService.GetUserByUsername(c.Request.Context(), username)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if err != nil {
			// Store failure, not an auth failure
			c.Error(err)
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("user", user)
		c.Next()
	}
}
