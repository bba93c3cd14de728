package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// TaskRepository handles staff task data operations. The pipeline only ever
// creates tasks and reads open ones; status transitions belong to the
// task-management routes.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask inserts a task row
func (r *TaskRepository) CreateTask(ctx context.Context, task *entities.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}
	return r.db.WithContext(ctx).Create(task).Error
}

// GetTaskByID retrieves a task by ID
func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID uuid.UUID) (*entities.Task, error) {
	var task entities.Task
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// ListOpenBySession retrieves pending and in-progress tasks for a session,
// ascending by creation time. Input for the follow-up evaluator.
func (r *TaskRepository) ListOpenBySession(ctx context.Context, sessionID uuid.UUID) ([]entities.Task, error) {
	var tasks []entities.Task
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND status IN ?", sessionID,
			[]entities.TaskStatus{entities.TaskStatusPending, entities.TaskStatusInProgress}).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
