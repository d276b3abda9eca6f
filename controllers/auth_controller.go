package controllers

import (
	"net/http"

	"TodoNest/models"
	"TodoNest/services"
	"TodoNest/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	UserService *services.UserService
}

func NewAuthController() *AuthController {
	return &AuthController{
		UserService: services.NewUserService(),
	}
}

func (a *AuthController) RegisterUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.UserService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err) // handled by the error middleware
		return
	}

	utils.SuccessResponse(c, http.StatusOK, models.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// LoginUser reads form credentials and returns a bearer token.
func (a *AuthController) LoginUser(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
