package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskType categorizes staff work items
type TaskType string

const (
	TaskTypeMaintenance TaskType = "maintenance"
	TaskTypeCleaning    TaskType = "cleaning"
	TaskTypeInspection  TaskType = "inspection"
	TaskTypeGeneral     TaskType = "general"
)

// TaskStatus represents the lifecycle state of a task. Transitions are owned
// by the task-management routes; the pipeline only creates tasks and reads
// status plus creation time for follow-up evaluation.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// TaskPriority mirrors summary priority levels
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task is a unit of staff work derived from an actionable summary
type Task struct {
	ID              uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID       uuid.UUID    `json:"session_id" gorm:"type:uuid;not null;index"`
	Type            TaskType     `json:"type" gorm:"type:varchar(20);not null;index"`
	Title           string       `json:"title" gorm:"type:varchar(255);not null"`
	Description     string       `json:"description" gorm:"type:text"`
	PropertyID      *uuid.UUID   `json:"property_id,omitempty" gorm:"type:uuid;index"`
	AssigneeName    string       `json:"assignee_name" gorm:"type:varchar(100)"`
	AssigneeRole    string       `json:"assignee_role" gorm:"type:varchar(100)"`
	Status          TaskStatus   `json:"status" gorm:"type:varchar(20);not null;index;default:'pending'"`
	Priority        TaskPriority `json:"priority" gorm:"type:varchar(10);not null"`
	SourceMessageID *uuid.UUID   `json:"source_message_id,omitempty" gorm:"type:uuid;index"`

	Metadata datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewTask creates a task in pending state
func NewTask(sessionID uuid.UUID, taskType TaskType, title string) *Task {
	return &Task{
		ID:        uuid.New(),
		SessionID: sessionID,
		Type:      taskType,
		Title:     title,
		Status:    TaskStatusPending,
		Priority:  TaskPriorityMedium,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// IsOpen reports whether the task still needs staff attention
func (t *Task) IsOpen() bool {
	return t.Status == TaskStatusPending || t.Status == TaskStatusInProgress
}

// Age returns how long the task has existed relative to now
func (t *Task) Age(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}
