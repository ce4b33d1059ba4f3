package services

import (
	"strings"
	"testing"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
)

func TestWeekdayProductivityRanksAndAverages(t *testing.T) {
	// 2026-06-01 is a Monday.
	records := []models.PerformanceRecord{
		{Date: day(2026, 6, 1), ProductivityScore: 1.0},
		{Date: day(2026, 6, 8), ProductivityScore: 2.0},
		{Date: day(2026, 6, 2), ProductivityScore: 3.0},
	}

	weekdays := WeekdayProductivity(records)
	if len(weekdays) != 2 {
		t.Fatalf("got %d weekdays, want 2", len(weekdays))
	}
	if weekdays[0].Weekday != int(time.Tuesday) || weekdays[0].ProductivityScore != 3.0 {
		t.Errorf("top weekday = %+v, want Tuesday at 3.0", weekdays[0])
	}
	if weekdays[1].Weekday != int(time.Monday) || weekdays[1].ProductivityScore != 1.5 {
		t.Errorf("second weekday = %+v, want Monday at 1.5", weekdays[1])
	}
}

func TestWeekdayProductivityNoRecords(t *testing.T) {
	if got := WeekdayProductivity(nil); len(got) != 0 {
		t.Errorf("got %d weekdays for no records, want 0", len(got))
	}
}

func TestComputeWeeklyTrendsSortedByWeek(t *testing.T) {
	records := []models.PerformanceRecord{
		{Date: day(2026, 6, 8), ProductivityScore: 4.0},
		{Date: day(2026, 6, 1), ProductivityScore: 1.0},
		{Date: day(2026, 6, 2), ProductivityScore: 3.0},
	}

	trends := ComputeWeeklyTrends(records)
	if len(trends) != 2 {
		t.Fatalf("got %d weeks, want 2", len(trends))
	}
	if trends[0].Week != "2026-W23" || trends[0].ProductivityScore != 2.0 {
		t.Errorf("first week = %+v, want 2026-W23 at 2.0", trends[0])
	}
	if trends[1].Week != "2026-W24" || trends[1].ProductivityScore != 4.0 {
		t.Errorf("second week = %+v, want 2026-W24 at 4.0", trends[1])
	}
}

func TestTasksCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		created   int
		want      float64
	}{
		{"nothing created", 0, 0, 0},
		{"three of four", 3, 4, 75},
		{"all done", 5, 5, 100},
		{"rounded", 1, 3, 33.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TasksCompletionRate(tt.completed, tt.created); got != tt.want {
				t.Errorf("TasksCompletionRate(%d, %d) = %v, want %v", tt.completed, tt.created, got, tt.want)
			}
		})
	}
}

func TestGoalProgressRate(t *testing.T) {
	if got := GoalProgressRate(nil); got != 0 {
		t.Errorf("progress rate for no goals = %v, want 0", got)
	}

	goals := []models.Goal{
		{CurrentValue: 50, TargetValue: 100},
		{CurrentValue: 200, TargetValue: 100}, // overshoot caps at 100
	}
	if got := GoalProgressRate(goals); got != 75 {
		t.Errorf("progress rate = %v, want 75", got)
	}

	// A zero-target goal drags the average down instead of dividing by zero.
	withZeroTarget := []models.Goal{
		{CurrentValue: 10, TargetValue: 10},
		{CurrentValue: 3, TargetValue: 0},
	}
	if got := GoalProgressRate(withZeroTarget); got != 50 {
		t.Errorf("progress rate with zero target = %v, want 50", got)
	}
}

func TestBuildRecommendations(t *testing.T) {
	hours := []models.HourActivity{{Hour: 9, ActivityLevel: 75}}
	weekdays := []models.WeekdayActivity{{Weekday: int(time.Monday), ProductivityScore: 2.5}}

	recommendations := BuildRecommendations(hours, weekdays, 50, 90)
	if len(recommendations) != 4 {
		t.Fatalf("got %d recommendations, want 4: %v", len(recommendations), recommendations)
	}
	if !strings.Contains(recommendations[0], "9:00") {
		t.Errorf("hour recommendation = %q, want the peak hour", recommendations[0])
	}
	if !strings.Contains(recommendations[1], "Monday") {
		t.Errorf("weekday recommendation = %q, want the peak weekday", recommendations[1])
	}
	if !strings.Contains(recommendations[2], "breaks") {
		t.Errorf("focus recommendation = %q, want the long-session note", recommendations[2])
	}
	if !strings.Contains(recommendations[3], "Excellent") {
		t.Errorf("completion recommendation = %q, want the high-rate note", recommendations[3])
	}
}

func TestBuildRecommendationsMidRange(t *testing.T) {
	// Mid-range focus and completion trigger no nudges.
	recommendations := BuildRecommendations(nil, nil, 30, 70)
	if len(recommendations) != 0 {
		t.Errorf("got %d recommendations, want 0: %v", len(recommendations), recommendations)
	}
}

func TestBuildRecommendationsLowActivity(t *testing.T) {
	recommendations := BuildRecommendations(nil, nil, 10, 40)
	if len(recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2: %v", len(recommendations), recommendations)
	}
	if !strings.Contains(recommendations[0], "distractions") {
		t.Errorf("focus recommendation = %q, want the short-session note", recommendations[0])
	}
	if !strings.Contains(recommendations[1], "smaller") {
		t.Errorf("completion recommendation = %q, want the low-rate note", recommendations[1])
	}
}
