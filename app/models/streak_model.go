package models

import (
	"time"

	"github.com/google/uuid"
)

// StreakSegment is one closed run of consecutive active days, archived
// when the run is broken by a gap of more than one day.
type StreakSegment struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Length    int       `json:"length"`
}

type Streak struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	UserID           uuid.UUID       `json:"user_id" db:"user_id"`
	CurrentStreak    int             `json:"current_streak" db:"current_streak"`
	LongestStreak    int             `json:"longest_streak" db:"longest_streak"`
	LastActivityDate *time.Time      `json:"last_activity_date" db:"last_activity_date"`
	StreakStartDate  *time.Time      `json:"streak_start_date" db:"streak_start_date"`
	TotalActiveDays  int             `json:"total_active_days" db:"total_active_days"`
	StreakHistory    []StreakSegment `json:"streak_history" db:"streak_history"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

type StreakStats struct {
	CurrentStreak   int             `json:"current_streak"`
	LongestStreak   int             `json:"longest_streak"`
	TotalActiveDays int             `json:"total_active_days"`
	StreakHistory   []StreakSegment `json:"streak_history"`
	IsActiveToday   bool            `json:"is_active_today"`
}
