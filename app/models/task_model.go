package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID                 uuid.UUID    `json:"id" db:"id"`
	UserID             uuid.UUID    `json:"user_id" db:"user_id"`
	Title              string       `json:"title" db:"title"`
	Description        string       `json:"description" db:"description"`
	Status             TaskStatus   `json:"status" db:"status"`
	Priority           TaskPriority `json:"priority" db:"priority"`
	DueDate            *time.Time   `json:"due_date" db:"due_date"`
	CompletedAt        *time.Time   `json:"completed_at" db:"completed_at"`
	EstimatedPomodoros int          `json:"estimated_pomodoros" db:"estimated_pomodoros"`
	CompletedPomodoros int          `json:"completed_pomodoros" db:"completed_pomodoros"`
	KanbanColumnID     *uuid.UUID   `json:"kanban_column_id" db:"kanban_column_id"`
	Position           int          `json:"position" db:"position"`
	CreatedAt          time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at" db:"updated_at"`
}

type CreateTaskRequest struct {
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description,omitempty"`
	Priority           string `json:"priority,omitempty"`
	DueDate            string `json:"due_date,omitempty"`
	EstimatedPomodoros int    `json:"estimated_pomodoros,omitempty"`
}

type UpdateTaskRequest struct {
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	Priority           *string `json:"priority,omitempty"`
	DueDate            *string `json:"due_date,omitempty"`
	EstimatedPomodoros *int    `json:"estimated_pomodoros,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
