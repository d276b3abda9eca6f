package models

type Task struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Completed   bool   `json:"completed" gorm:"not null;default:false"`
	UserID      uint   `json:"user_id" gorm:"not null;index"`
}

// TableName returns the database table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

type TaskCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskUpdateRequest carries a sparse patch: only non-nil fields are applied.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
