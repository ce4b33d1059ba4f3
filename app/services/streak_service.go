package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/google/uuid"
)

// StreakService maintains the per-user daily activity streak. A day counts
// as active when at least one task was completed inside its
// [00:00, 24:00) window, server-local time.
type StreakService struct {
	DB *sql.DB
}

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// daysBetween counts calendar days between two instants. The dates are
// re-anchored in UTC before subtracting so a DST-shortened day still counts
// as a full day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := bu.Sub(au)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

// archiveSegment closes the current run into history. Called only when a
// run exists (currentStreak > 0).
func archiveSegment(s *models.Streak) {
	if s.CurrentStreak <= 0 || s.StreakStartDate == nil {
		return
	}
	end := *s.StreakStartDate
	if s.LastActivityDate != nil {
		end = *s.LastActivityDate
	}
	s.StreakHistory = append(s.StreakHistory, models.StreakSegment{
		StartDate: *s.StreakStartDate,
		EndDate:   end,
		Length:    s.CurrentStreak,
	})
}

// AdvanceStreak applies one qualifying activity on day (already
// midnight-truncated). It returns false when the day was recorded before,
// leaving the streak untouched. longestStreak never decreases.
func AdvanceStreak(s *models.Streak, day time.Time) bool {
	if s.LastActivityDate != nil && sameDay(*s.LastActivityDate, day) {
		return false
	}

	yesterday := day.AddDate(0, 0, -1)
	if s.LastActivityDate != nil && sameDay(*s.LastActivityDate, yesterday) {
		s.CurrentStreak++
	} else {
		if s.LastActivityDate != nil && s.CurrentStreak > 0 && daysBetween(*s.LastActivityDate, day) > 1 {
			archiveSegment(s)
		}
		s.CurrentStreak = 1
		start := day
		s.StreakStartDate = &start
	}

	last := day
	s.LastActivityDate = &last
	s.TotalActiveDays++
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	return true
}

// BreakStreak closes out a streak that silently expired: more than one day
// without activity. Returns false when nothing changed, so repeated calls
// are idempotent.
func BreakStreak(s *models.Streak, today time.Time) bool {
	if s.LastActivityDate == nil || s.CurrentStreak == 0 {
		return false
	}
	if daysBetween(*s.LastActivityDate, DayStart(today)) <= 1 {
		return false
	}
	archiveSegment(s)
	s.CurrentStreak = 0
	s.StreakStartDate = nil
	return true
}

// GetOrCreateStreak returns the user's streak row, creating a zeroed one
// on first access. The insert is guarded by the unique constraint on
// user_id; a concurrent creator wins and we re-read.
func (s *StreakService) GetOrCreateStreak(userID uuid.UUID) (models.Streak, error) {
	uq := queries.UserQueries{DB: s.DB}
	if _, err := uq.GetUserByID(userID); err != nil {
		return models.Streak{}, err
	}

	sq := queries.StreakQueries{DB: s.DB}
	st, err := sq.GetStreakByUser(userID)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, queries.ErrStreakNotFound) {
		return models.Streak{}, err
	}

	now := time.Now()
	st = models.Streak{
		ID:            uuid.New(),
		UserID:        userID,
		StreakHistory: []models.StreakSegment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := sq.InsertStreak(&st); err != nil {
		if database.IsUniqueViolation(err) {
			return sq.GetStreakByUser(userID)
		}
		return models.Streak{}, err
	}
	return st, nil
}

// UpdateStreak records today's qualifying activity, if any. With no
// completed task today the streak is returned unchanged.
func (s *StreakService) UpdateStreak(userID uuid.UUID, now time.Time) (models.Streak, error) {
	st, err := s.GetOrCreateStreak(userID)
	if err != nil {
		return models.Streak{}, err
	}

	day := DayStart(now)
	tq := queries.TaskQueries{DB: s.DB}
	active, err := tq.HasCompletedTaskInRange(userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return st, err
	}
	if !active {
		return st, nil
	}

	if !AdvanceStreak(&st, day) {
		return st, nil
	}

	sq := queries.StreakQueries{DB: s.DB}
	if err := sq.UpdateStreak(&st); err != nil {
		return st, err
	}
	return st, nil
}

// CheckStreakBreak reconciles a streak that expired while the user was
// away, archiving the old run and zeroing the counter.
func (s *StreakService) CheckStreakBreak(userID uuid.UUID, now time.Time) (models.Streak, error) {
	st, err := s.GetOrCreateStreak(userID)
	if err != nil {
		return models.Streak{}, err
	}

	if !BreakStreak(&st, now) {
		return st, nil
	}

	sq := queries.StreakQueries{DB: s.DB}
	if err := sq.UpdateStreak(&st); err != nil {
		return st, err
	}
	return st, nil
}

func (s *StreakService) GetStreakStats(userID uuid.UUID, now time.Time) (models.StreakStats, error) {
	st, err := s.GetOrCreateStreak(userID)
	if err != nil {
		return models.StreakStats{}, err
	}

	day := DayStart(now)
	tq := queries.TaskQueries{DB: s.DB}
	activeToday, err := tq.HasCompletedTaskInRange(userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return models.StreakStats{}, err
	}

	history := st.StreakHistory
	if history == nil {
		history = []models.StreakSegment{}
	}
	return models.StreakStats{
		CurrentStreak:   st.CurrentStreak,
		LongestStreak:   st.LongestStreak,
		TotalActiveDays: st.TotalActiveDays,
		StreakHistory:   history,
		IsActiveToday:   activeToday,
	}, nil
}
