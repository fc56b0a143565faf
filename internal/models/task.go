package models

import "time"

// TaskColumn represents a column on the task board
type TaskColumn string

const (
	TaskColumnBacklog    TaskColumn = "backlog"
	TaskColumnInProgress TaskColumn = "in_progress"
	TaskColumnReview     TaskColumn = "review"
	TaskColumnDone       TaskColumn = "done"
)

// TaskPriority represents how urgent a task is
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a card on the task board
type Task struct {
	Base
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	Column      TaskColumn   `gorm:"column:board_column;not null;default:backlog" json:"column"`
	Priority    TaskPriority `gorm:"not null;default:medium" json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}
