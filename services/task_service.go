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

type TaskService struct {
	DB *gorm.DB
}

// NewTaskService initializes TaskService with the shared database handle
func NewTaskService() *TaskService {
	return &TaskService{
		DB: database.GetDB(),
	}
}

// CreateTask persists a new task owned by the given user.
func (s *TaskService) CreateTask(ctx context.Context, userID uint, req models.TaskCreateRequest) (*models.Task, error) {
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		UserID:      userID,
	}
	if err := s.DB.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// GetAllTasks returns every task owned by the given user, in insertion order.
func (s *TaskService) GetAllTasks(ctx context.Context, userID uint) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies a sparse patch to one of the user's tasks. A task owned
// by another user is reported as not found, same as a nonexistent id.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint, patch models.TaskUpdateRequest) (*models.Task, error) {
	var task models.Task
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewCustomError(http.StatusNotFound, "Task not found")
			}
			return err
		}

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Completed != nil {
			task.Completed = *patch.Completed
		}

		return tx.Save(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes one of the user's tasks, with the same not-found
// semantics as UpdateTask.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewCustomError(http.StatusNotFound, "Task not found")
			}
			return err
		}
		return tx.Delete(&task).Error
	})
}
