package services

import (
	"testing"
	"time"
	// Embedded zone database, so the DST cases below do not depend on the
	// host's tzdata.
	_ "time/tzdata"

	"github.com/focusbloom/focusbloom-backend/app/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDayStart(t *testing.T) {
	in := time.Date(2026, 3, 14, 23, 59, 58, 0, time.Local)
	got := DayStart(in)
	want := day(2026, 3, 14)
	if !got.Equal(want) {
		t.Fatalf("DayStart(%v) = %v, want %v", in, got, want)
	}
}

func TestAdvanceStreakConsecutiveDays(t *testing.T) {
	var s models.Streak
	days := []time.Time{day(2026, 1, 1), day(2026, 1, 2), day(2026, 1, 3)}
	for _, d := range days {
		if !AdvanceStreak(&s, d) {
			t.Fatalf("AdvanceStreak(%v) returned false", d)
		}
	}
	if s.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", s.LongestStreak)
	}
	if s.TotalActiveDays != 3 {
		t.Errorf("total active days = %d, want 3", s.TotalActiveDays)
	}
	if len(s.StreakHistory) != 0 {
		t.Errorf("history length = %d, want 0", len(s.StreakHistory))
	}
}

func TestAdvanceStreakSameDayIsNoOp(t *testing.T) {
	var s models.Streak
	AdvanceStreak(&s, day(2026, 1, 1))
	if AdvanceStreak(&s, day(2026, 1, 1)) {
		t.Fatal("second activity on the same day should not advance the streak")
	}
	if s.CurrentStreak != 1 || s.TotalActiveDays != 1 {
		t.Errorf("streak = %d, active days = %d, want 1 and 1", s.CurrentStreak, s.TotalActiveDays)
	}
}

func TestAdvanceStreakGapResetsAndArchives(t *testing.T) {
	var s models.Streak
	AdvanceStreak(&s, day(2026, 1, 1))
	AdvanceStreak(&s, day(2026, 1, 4))

	if s.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1 after gap", s.CurrentStreak)
	}
	if len(s.StreakHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(s.StreakHistory))
	}
	seg := s.StreakHistory[0]
	if seg.Length != 1 {
		t.Errorf("archived segment length = %d, want 1", seg.Length)
	}
	if !seg.StartDate.Equal(day(2026, 1, 1)) || !seg.EndDate.Equal(day(2026, 1, 1)) {
		t.Errorf("archived segment = %v..%v, want 2026-01-01..2026-01-01", seg.StartDate, seg.EndDate)
	}
	if s.StreakStartDate == nil || !s.StreakStartDate.Equal(day(2026, 1, 4)) {
		t.Errorf("streak start = %v, want 2026-01-04", s.StreakStartDate)
	}
}

func TestLongestStreakNeverDecreases(t *testing.T) {
	var s models.Streak
	for d := 1; d <= 5; d++ {
		AdvanceStreak(&s, day(2026, 1, d))
	}
	AdvanceStreak(&s, day(2026, 1, 10))

	if s.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 5 {
		t.Errorf("longest streak = %d, want 5", s.LongestStreak)
	}
	if s.LongestStreak < s.CurrentStreak {
		t.Error("longest streak fell below current streak")
	}
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// US clocks spring forward on 2026-03-08, leaving that day 23 hours
	// long, and fall back on 2026-11-01.
	at := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 0, 0, 0, loc)
	}
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"spring forward two days", at(2026, time.March, 7), at(2026, time.March, 9), 2},
		{"spring forward one day", at(2026, time.March, 7), at(2026, time.March, 8), 1},
		{"fall back two days", at(2026, time.October, 31), at(2026, time.November, 2), 2},
		{"reversed arguments", at(2026, time.March, 9), at(2026, time.March, 7), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("daysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBreakStreakAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	var s models.Streak
	AdvanceStreak(&s, time.Date(2026, time.March, 7, 0, 0, 0, 0, loc))

	// Two full calendar days were missed even though the wall-clock
	// difference is under 48 hours.
	if !BreakStreak(&s, time.Date(2026, time.March, 9, 9, 0, 0, 0, loc)) {
		t.Fatal("streak should break over a two-day gap spanning a DST change")
	}
	if s.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", s.CurrentStreak)
	}
	if len(s.StreakHistory) != 1 {
		t.Errorf("history length = %d, want 1", len(s.StreakHistory))
	}
}

func TestBreakStreak(t *testing.T) {
	var s models.Streak
	AdvanceStreak(&s, day(2026, 2, 1))
	AdvanceStreak(&s, day(2026, 2, 2))

	if BreakStreak(&s, day(2026, 2, 3)) {
		t.Fatal("one missed day should not break the streak yet")
	}
	if !BreakStreak(&s, day(2026, 2, 4)) {
		t.Fatal("two missed days should break the streak")
	}
	if s.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", s.CurrentStreak)
	}
	if s.StreakStartDate != nil {
		t.Error("streak start date should be cleared")
	}
	if len(s.StreakHistory) != 1 || s.StreakHistory[0].Length != 2 {
		t.Errorf("history = %+v, want one segment of length 2", s.StreakHistory)
	}

	// Repeated calls leave everything as-is.
	if BreakStreak(&s, day(2026, 2, 5)) {
		t.Error("breaking an already-broken streak should report no change")
	}
	if len(s.StreakHistory) != 1 {
		t.Errorf("history length = %d after repeat break, want 1", len(s.StreakHistory))
	}
}

func TestBreakThenResume(t *testing.T) {
	var s models.Streak
	AdvanceStreak(&s, day(2026, 3, 1))
	AdvanceStreak(&s, day(2026, 3, 2))
	BreakStreak(&s, day(2026, 3, 5))
	AdvanceStreak(&s, day(2026, 3, 5))

	if s.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", s.CurrentStreak)
	}
	if s.TotalActiveDays != 3 {
		t.Errorf("total active days = %d, want 3", s.TotalActiveDays)
	}
	// The old run was archived by BreakStreak; resuming must not
	// archive it again.
	if len(s.StreakHistory) != 1 {
		t.Errorf("history length = %d, want 1", len(s.StreakHistory))
	}
}
