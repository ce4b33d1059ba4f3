package services

import (
	"testing"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
)

func TestApplyProgressCompletesOnTarget(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)
	tests := []struct {
		name       string
		current    float64
		target     float64
		wantStatus models.GoalStatus
		wantChange bool
	}{
		{"below target", 4, 10, models.GoalStatusActive, false},
		{"exactly target", 10, 10, models.GoalStatusCompleted, true},
		{"past target", 12, 10, models.GoalStatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.Goal{Status: models.GoalStatusActive, TargetValue: tt.target}
			changed := ApplyProgress(&g, tt.current, now)
			if changed != tt.wantChange {
				t.Errorf("changed = %v, want %v", changed, tt.wantChange)
			}
			if g.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", g.Status, tt.wantStatus)
			}
			if g.CurrentValue != tt.current {
				t.Errorf("current value = %v, want %v", g.CurrentValue, tt.current)
			}
			if tt.wantChange && (g.CompletedAt == nil || !g.CompletedAt.Equal(now)) {
				t.Errorf("completed at = %v, want %v", g.CompletedAt, now)
			}
		})
	}
}

func TestApplyProgressCompletionIsOneWay(t *testing.T) {
	now := time.Now()
	g := models.Goal{Status: models.GoalStatusActive, TargetValue: 5}
	ApplyProgress(&g, 5, now)
	firstCompleted := *g.CompletedAt

	// Progress dropping back under the target must not reopen the goal.
	if ApplyProgress(&g, 3, now.Add(time.Hour)) {
		t.Error("completed goal reported a status change")
	}
	if g.Status != models.GoalStatusCompleted {
		t.Errorf("status = %s, want completed", g.Status)
	}
	if !g.CompletedAt.Equal(firstCompleted) {
		t.Error("completed timestamp changed on a later update")
	}
}

func TestApplyProgressLeavesPausedAndFailedAlone(t *testing.T) {
	now := time.Now()
	for _, status := range []models.GoalStatus{models.GoalStatusPaused, models.GoalStatusFailed} {
		g := models.Goal{Status: status, TargetValue: 5}
		if ApplyProgress(&g, 10, now) {
			t.Errorf("%s goal reported a status change", status)
		}
		if g.Status != status {
			t.Errorf("status = %s, want %s", g.Status, status)
		}
	}
}

func TestGoalWindowCoversEndDay(t *testing.T) {
	start := day(2026, time.June, 1)
	end := day(2026, time.June, 7)
	g := models.Goal{StartDate: start, EndDate: end}

	gotStart, gotEnd := GoalWindow(&g)
	if !gotStart.Equal(start) {
		t.Errorf("window start = %v, want %v", gotStart, start)
	}
	if want := day(2026, time.June, 8); !gotEnd.Equal(want) {
		t.Errorf("window end = %v, want %v", gotEnd, want)
	}

	// A goal starting and ending the same day still spans that full day.
	oneDay := models.Goal{StartDate: start, EndDate: start}
	gotStart, gotEnd = GoalWindow(&oneDay)
	if !gotEnd.After(gotStart) {
		t.Errorf("same-day window [%v, %v) is empty", gotStart, gotEnd)
	}
	if want := day(2026, time.June, 2); !gotEnd.Equal(want) {
		t.Errorf("same-day window end = %v, want %v", gotEnd, want)
	}
}

func TestExpireGoal(t *testing.T) {
	// Mid-morning June 15; end dates are stored as midnight timestamps.
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.Local)
	tests := []struct {
		name       string
		status     models.GoalStatus
		endDate    time.Time
		wantStatus models.GoalStatus
		wantChange bool
	}{
		{"active past end", models.GoalStatusActive, day(2026, time.June, 14), models.GoalStatusFailed, true},
		{"active on end day", models.GoalStatusActive, day(2026, time.June, 15), models.GoalStatusActive, false},
		{"active before end", models.GoalStatusActive, day(2026, time.June, 16), models.GoalStatusActive, false},
		{"completed past end", models.GoalStatusCompleted, day(2026, time.June, 14), models.GoalStatusCompleted, false},
		{"paused past end", models.GoalStatusPaused, day(2026, time.June, 14), models.GoalStatusPaused, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.Goal{Status: tt.status, EndDate: tt.endDate}
			if got := ExpireGoal(&g, now); got != tt.wantChange {
				t.Errorf("changed = %v, want %v", got, tt.wantChange)
			}
			if g.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", g.Status, tt.wantStatus)
			}
		})
	}
}
