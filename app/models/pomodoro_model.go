package models

import (
	"time"

	"github.com/google/uuid"
)

type PomodoroStatus string

const (
	PomodoroStatusInProgress  PomodoroStatus = "in_progress"
	PomodoroStatusCompleted   PomodoroStatus = "completed"
	PomodoroStatusInterrupted PomodoroStatus = "interrupted"
)

// DefaultPomodoroDuration is 25 minutes in seconds.
const DefaultPomodoroDuration = 25 * 60

type Pomodoro struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	TaskID    uuid.UUID      `json:"task_id" db:"task_id"`
	Duration  int            `json:"duration" db:"duration"`
	StartTime *time.Time     `json:"start_time" db:"start_time"`
	EndTime   *time.Time     `json:"end_time" db:"end_time"`
	Status    PomodoroStatus `json:"status" db:"status"`
	Notes     string         `json:"notes" db:"notes"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

type CreatePomodoroRequest struct {
	TaskID   string `json:"task_id" validate:"required"`
	Duration int    `json:"duration,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type PomodoroNotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}
