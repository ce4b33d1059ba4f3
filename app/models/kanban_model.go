package models

import (
	"time"

	"github.com/google/uuid"
)

type KanbanBoard struct {
	ID          uuid.UUID `json:"id" db:"id"`
	GoalID      uuid.UUID `json:"goal_id" db:"goal_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type KanbanColumn struct {
	ID           uuid.UUID `json:"id" db:"id"`
	BoardID      uuid.UUID `json:"board_id" db:"board_id"`
	Name         string    `json:"name" db:"name"`
	Position     int       `json:"position" db:"position"`
	Color        string    `json:"color" db:"color"`
	IsDoneColumn bool      `json:"is_done_column" db:"is_done_column"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type ColumnWithTasks struct {
	KanbanColumn
	Tasks []Task `json:"tasks"`
}

type BoardWithColumns struct {
	KanbanBoard
	Columns []ColumnWithTasks `json:"columns"`
}

type MoveTaskRequest struct {
	TaskID   string `json:"task_id" validate:"required"`
	ColumnID string `json:"column_id" validate:"required"`
	Position int    `json:"position,omitempty"`
}
