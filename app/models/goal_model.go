package models

import (
	"time"

	"github.com/google/uuid"
)

type GoalType string

const (
	GoalTypeDaily   GoalType = "daily"
	GoalTypeWeekly  GoalType = "weekly"
	GoalTypeMonthly GoalType = "monthly"
	GoalTypeYearly  GoalType = "yearly"
)

type GoalCategory string

const (
	GoalCategoryTasksCompleted     GoalCategory = "tasks_completed"
	GoalCategoryPomodorosCompleted GoalCategory = "pomodoros_completed"
	GoalCategoryFocusTime          GoalCategory = "focus_time"
	GoalCategoryProductivityScore  GoalCategory = "productivity_score"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusFailed    GoalStatus = "failed"
	GoalStatusPaused    GoalStatus = "paused"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeDaily, GoalTypeWeekly, GoalTypeMonthly, GoalTypeYearly:
		return true
	}
	return false
}

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusFailed, GoalStatusPaused:
		return true
	}
	return false
}

func (c GoalCategory) Valid() bool {
	switch c {
	case GoalCategoryTasksCompleted, GoalCategoryPomodorosCompleted,
		GoalCategoryFocusTime, GoalCategoryProductivityScore:
		return true
	}
	return false
}

type Goal struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	UserID       uuid.UUID    `json:"user_id" db:"user_id"`
	Title        string       `json:"title" db:"title"`
	Description  string       `json:"description" db:"description"`
	Type         GoalType     `json:"type" db:"type"`
	Category     GoalCategory `json:"category" db:"category"`
	Status       GoalStatus   `json:"status" db:"status"`
	TargetValue  float64      `json:"target_value" db:"target_value"`
	CurrentValue float64      `json:"current_value" db:"current_value"`
	StartDate    time.Time    `json:"start_date" db:"start_date"`
	EndDate      time.Time    `json:"end_date" db:"end_date"`
	CompletedAt  *time.Time   `json:"completed_at" db:"completed_at"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

type CreateGoalRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	TargetValue float64 `json:"target_value" validate:"required,gt=0"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     string  `json:"end_date" validate:"required"`
}

type UpdateGoalRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	TargetValue *float64 `json:"target_value,omitempty"`
	Status      *string  `json:"status,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
}

type UpdateGoalProgressRequest struct {
	CurrentValue *float64 `json:"current_value" validate:"required"`
}
