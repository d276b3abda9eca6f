package models

type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"not null"` // Exclude password from JSON responses for security

	Tasks []Task `json:"-" gorm:"foreignKey:UserID"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is bound from a form body, not JSON.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// UserResponse is the public projection of a User.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
