package models

import (
	"time"

	"github.com/google/uuid"
)

// PerformanceRecord is one day's aggregated productivity snapshot.
// At most one record exists per (user_id, date); the snapshot builder
// overwrites it in full on every recompute.
type PerformanceRecord struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	UserID             uuid.UUID       `json:"user_id" db:"user_id"`
	Date               time.Time       `json:"date" db:"date"`
	TasksCompleted     int             `json:"tasks_completed" db:"tasks_completed"`
	PomodorosCompleted int             `json:"pomodoros_completed" db:"pomodoros_completed"`
	FocusTimeMinutes   float64         `json:"focus_time_minutes" db:"focus_time_minutes"`
	ProductivityScore  float64         `json:"productivity_score" db:"productivity_score"`
	HourlyActivity     map[int]float64 `json:"hourly_activity" db:"hourly_activity"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
}

type WeeklyAverage struct {
	TasksCompleted     float64 `json:"tasks_completed"`
	PomodorosCompleted float64 `json:"pomodoros_completed"`
	FocusTime          float64 `json:"focus_time"`
	ProductivityScore  float64 `json:"productivity_score"`
}

type MonthlyTrend struct {
	Month              string  `json:"month"`
	TasksCompleted     float64 `json:"tasks_completed"`
	PomodorosCompleted float64 `json:"pomodoros_completed"`
	FocusTime          float64 `json:"focus_time"`
}

type HourActivity struct {
	Hour          int     `json:"hour"`
	ActivityLevel float64 `json:"activity_level"`
}

// WeekdayActivity is a weekday's average productivity score, 0 = Sunday.
type WeekdayActivity struct {
	Weekday           int     `json:"weekday"`
	ProductivityScore float64 `json:"productivity_score"`
}

// WeekTrend is one ISO week's average productivity score, keyed like
// 2026-W23.
type WeekTrend struct {
	Week              string  `json:"week"`
	ProductivityScore float64 `json:"productivity_score"`
}

// ProductivityInsights is the interpreted layer on top of the raw
// analytics: where the user's focus lands, how they convert planned work
// into finished work, and what to try next.
type ProductivityInsights struct {
	MostProductiveHours    []HourActivity    `json:"most_productive_hours"`
	MostProductiveWeekdays []WeekdayActivity `json:"most_productive_weekdays"`
	AverageFocusTime       float64           `json:"average_focus_time"`
	TasksCompletionRate    float64           `json:"tasks_completion_rate"`
	GoalProgressRate       float64           `json:"goal_progress_rate"`
	Recommendations        []string          `json:"recommendations"`
	WeeklyTrends           []WeekTrend       `json:"weekly_trends"`
	MonthlyTrends          []MonthlyTrend    `json:"monthly_trends"`
}

type AnalyticsData struct {
	DailyStats          []PerformanceRecord `json:"daily_stats"`
	WeeklyAverage       WeeklyAverage       `json:"weekly_average"`
	MonthlyTrends       []MonthlyTrend      `json:"monthly_trends"`
	BestPerformanceDays []PerformanceRecord `json:"best_performance_days"`
	MostProductiveHours []HourActivity      `json:"most_productive_hours"`
}

type UpdateDailyPerformanceRequest struct {
	Date string `json:"date,omitempty"`
}
