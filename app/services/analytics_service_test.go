package services

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
)

func TestProductivityScore(t *testing.T) {
	tests := []struct {
		name  string
		tasks int
		focus float64
		want  float64
	}{
		{"no activity", 0, 0, 0},
		{"three tasks fifty minutes", 3, 50, 0.55},
		{"tasks only", 10, 0, 1.0},
		{"focus only", 0, 200, 1.0},
		{"capped at five", 100, 1000, 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProductivityScore(tt.tasks, tt.focus)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ProductivityScore(%d, %v) = %v, want %v", tt.tasks, tt.focus, got, tt.want)
			}
		})
	}
}

func TestProductivityScoreBounds(t *testing.T) {
	for tasks := 0; tasks <= 60; tasks += 5 {
		for focus := 0.0; focus <= 1200; focus += 100 {
			got := ProductivityScore(tasks, focus)
			if got < 0 || got > 5.0 {
				t.Fatalf("ProductivityScore(%d, %v) = %v, outside [0, 5]", tasks, focus, got)
			}
		}
	}
}

func TestHourlyActivity(t *testing.T) {
	start9 := time.Date(2026, 4, 1, 9, 15, 0, 0, time.Local)
	start9b := time.Date(2026, 4, 1, 9, 45, 0, 0, time.Local)
	start14 := time.Date(2026, 4, 1, 14, 0, 0, 0, time.Local)
	pomodoros := []models.Pomodoro{
		{StartTime: &start9, Duration: 1500},
		{StartTime: &start9b, Duration: 1500},
		{StartTime: &start14, Duration: 600},
		{Duration: 1500}, // never started, ignored
	}

	activity := HourlyActivity(pomodoros)
	if len(activity) != 24 {
		t.Fatalf("got %d slots, want 24", len(activity))
	}
	if activity[9] != 50 {
		t.Errorf("hour 9 = %v minutes, want 50", activity[9])
	}
	if activity[14] != 10 {
		t.Errorf("hour 14 = %v minutes, want 10", activity[14])
	}
	if activity[0] != 0 {
		t.Errorf("hour 0 = %v minutes, want 0", activity[0])
	}
}

func TestBuildDailyRecordIsDeterministic(t *testing.T) {
	start9 := time.Date(2026, 4, 1, 9, 0, 0, 0, time.Local)
	start16 := time.Date(2026, 4, 1, 16, 30, 0, 0, time.Local)
	tests := []struct {
		name      string
		tasks     int
		pomodoros []models.Pomodoro
	}{
		{"no activity", 0, nil},
		{"tasks without pomodoros", 4, nil},
		{"full day", 3, []models.Pomodoro{
			{StartTime: &start9, Duration: 1500},
			{StartTime: &start16, Duration: 1500},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := day(2026, 4, 1)
			first := buildDailyRecord(tt.tasks, tt.pomodoros, d)
			second := buildDailyRecord(tt.tasks, tt.pomodoros, d)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("rebuilt snapshot differs:\nfirst  = %+v\nsecond = %+v", first, second)
			}
		})
	}
}

func TestBuildDailyRecordFields(t *testing.T) {
	start9 := time.Date(2026, 4, 1, 9, 0, 0, 0, time.Local)
	start9b := time.Date(2026, 4, 1, 9, 30, 0, 0, time.Local)
	pomodoros := []models.Pomodoro{
		{StartTime: &start9, Duration: 1500},
		{StartTime: &start9b, Duration: 1500},
	}

	record := buildDailyRecord(3, pomodoros, day(2026, 4, 1))
	if record.TasksCompleted != 3 {
		t.Errorf("tasks completed = %d, want 3", record.TasksCompleted)
	}
	if record.PomodorosCompleted != 2 {
		t.Errorf("pomodoros completed = %d, want 2", record.PomodorosCompleted)
	}
	if record.FocusTimeMinutes != 50 {
		t.Errorf("focus minutes = %v, want 50", record.FocusTimeMinutes)
	}
	if want := ProductivityScore(3, 50); record.ProductivityScore != want {
		t.Errorf("score = %v, want %v", record.ProductivityScore, want)
	}
	if record.HourlyActivity[9] != 50 {
		t.Errorf("hour 9 = %v minutes, want 50", record.HourlyActivity[9])
	}
}

func TestComputeWeeklyAverage(t *testing.T) {
	records := []models.PerformanceRecord{
		{TasksCompleted: 3, PomodorosCompleted: 2, FocusTimeMinutes: 50, ProductivityScore: 0.55},
		{TasksCompleted: 5, PomodorosCompleted: 4, FocusTimeMinutes: 100, ProductivityScore: 1.0},
	}
	avg := ComputeWeeklyAverage(records)
	if avg.TasksCompleted != 4 {
		t.Errorf("tasks average = %v, want 4", avg.TasksCompleted)
	}
	if avg.PomodorosCompleted != 3 {
		t.Errorf("pomodoros average = %v, want 3", avg.PomodorosCompleted)
	}
	if avg.FocusTime != 75 {
		t.Errorf("focus average = %v, want 75", avg.FocusTime)
	}
	if avg.ProductivityScore != 0.78 {
		t.Errorf("score average = %v, want 0.78", avg.ProductivityScore)
	}
}

func TestComputeWeeklyAverageEmpty(t *testing.T) {
	avg := ComputeWeeklyAverage(nil)
	if avg != (models.WeeklyAverage{}) {
		t.Errorf("average of no records = %+v, want zeroes", avg)
	}
}

func TestComputeMonthlyTrendsSortedByMonth(t *testing.T) {
	records := []models.PerformanceRecord{
		{Date: day(2026, 3, 10), TasksCompleted: 4, FocusTimeMinutes: 60},
		{Date: day(2026, 1, 5), TasksCompleted: 2, FocusTimeMinutes: 30},
		{Date: day(2026, 3, 11), TasksCompleted: 6, FocusTimeMinutes: 90},
		{Date: day(2026, 2, 1), TasksCompleted: 1, FocusTimeMinutes: 10},
	}
	trends := ComputeMonthlyTrends(records)
	if len(trends) != 3 {
		t.Fatalf("got %d months, want 3", len(trends))
	}
	wantMonths := []string{"2026-01", "2026-02", "2026-03"}
	for i, want := range wantMonths {
		if trends[i].Month != want {
			t.Errorf("trends[%d].Month = %q, want %q", i, trends[i].Month, want)
		}
	}
	if trends[2].TasksCompleted != 5 {
		t.Errorf("march tasks average = %v, want 5", trends[2].TasksCompleted)
	}
	if trends[2].FocusTime != 75 {
		t.Errorf("march focus average = %v, want 75", trends[2].FocusTime)
	}
}

func TestBestPerformanceDays(t *testing.T) {
	var records []models.PerformanceRecord
	for i := 1; i <= 8; i++ {
		records = append(records, models.PerformanceRecord{
			Date:              day(2026, 5, i),
			ProductivityScore: float64(i) * 0.1,
		})
	}
	best := BestPerformanceDays(records)
	if len(best) != 5 {
		t.Fatalf("got %d days, want 5", len(best))
	}
	for i := 1; i < len(best); i++ {
		if best[i].ProductivityScore > best[i-1].ProductivityScore {
			t.Fatalf("best days not in descending score order: %v", best)
		}
	}
	if !best[0].Date.Equal(day(2026, 5, 8)) {
		t.Errorf("best day = %v, want 2026-05-08", best[0].Date)
	}
	// Input order survives.
	if !records[0].Date.Equal(day(2026, 5, 1)) {
		t.Error("input slice was reordered")
	}
}

func TestMostProductiveHours(t *testing.T) {
	records := []models.PerformanceRecord{
		{HourlyActivity: map[int]float64{9: 50, 14: 10}},
		{HourlyActivity: map[int]float64{9: 25, 20: 40}},
	}
	hours := MostProductiveHours(records)
	if len(hours) != 6 {
		t.Fatalf("got %d hours, want 6", len(hours))
	}
	if hours[0].Hour != 9 || hours[0].ActivityLevel != 75 {
		t.Errorf("top hour = %+v, want hour 9 at 75", hours[0])
	}
	if hours[1].Hour != 20 || hours[2].Hour != 14 {
		t.Errorf("ranking = %+v, want 9, 20, 14 first", hours[:3])
	}
}

func TestMostProductiveHoursNoRecords(t *testing.T) {
	hours := MostProductiveHours(nil)
	if hours == nil {
		t.Fatal("want an empty slice, got nil")
	}
	if len(hours) != 0 {
		t.Errorf("got %d hours for no records, want 0", len(hours))
	}
}
