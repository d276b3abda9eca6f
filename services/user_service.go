package services

import (
	"context"
	"errors"
	"net/http"

	"TodoNest/config/database"
	"TodoNest/models"
	"TodoNest/utils"

	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

// NewUserService initializes UserService with the shared database handle
func NewUserService() *UserService {
	return &UserService{
		DB: database.GetDB(),
	}
}

// Register creates a new user with a hashed password. Fails with a 400
// CustomError when the username is already taken.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	var existing models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Username already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, HashedPassword: hashed}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		// A concurrent registration can slip past the check above and hit
		// the unique index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewCustomError(http.StatusBadRequest, "Username already registered")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token. A missing user
// and a wrong password are deliberately indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", utils.NewCustomError(http.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return "", err
	}

	if !utils.CheckPassword(password, user.HashedPassword) {
		return "", utils.NewCustomError(http.StatusUnauthorized, "Invalid username or password")
	}

	return utils.GenerateToken(user.Username)
}

// GetUserByUsername looks up a user record, used by the auth middleware.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
