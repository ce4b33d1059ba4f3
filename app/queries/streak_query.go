package queries

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrStreakNotFound = errors.New("streak not found")

type StreakQueries struct {
	DB *sql.DB
}

func (q *StreakQueries) GetStreakByUser(userID uuid.UUID) (models.Streak, error) {
	s := models.Streak{}
	var historyBytes []byte
	query := `SELECT id, user_id, current_streak, longest_streak, last_activity_date, streak_start_date, total_active_days, streak_history, created_at, updated_at FROM streaks WHERE user_id = $1`
	err := q.DB.QueryRow(query, userID).Scan(&s.ID, &s.UserID, &s.CurrentStreak, &s.LongestStreak,
		&s.LastActivityDate, &s.StreakStartDate, &s.TotalActiveDays, &historyBytes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return s, ErrStreakNotFound
		}
		println(err.Error())
		return s, errors.New("unable to get streak")
	}
	if len(historyBytes) > 0 {
		if err := json.Unmarshal(historyBytes, &s.StreakHistory); err != nil {
			return s, errors.New("unable to decode streak history")
		}
	}
	return s, nil
}

// InsertStreak returns the raw driver error wrapped so callers can detect
// a unique violation when two requests race on first access.
func (q *StreakQueries) InsertStreak(s *models.Streak) error {
	historyBytes, err := json.Marshal(s.StreakHistory)
	if err != nil {
		return err
	}
	query := `INSERT INTO streaks (id, user_id, current_streak, longest_streak, last_activity_date, streak_start_date, total_active_days, streak_history, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err = q.DB.Exec(query, s.ID, s.UserID, s.CurrentStreak, s.LongestStreak,
		s.LastActivityDate, s.StreakStartDate, s.TotalActiveDays, historyBytes, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("unable to insert streak: %w", err)
	}
	return nil
}

func (q *StreakQueries) UpdateStreak(s *models.Streak) error {
	historyBytes, err := json.Marshal(s.StreakHistory)
	if err != nil {
		return err
	}
	query := `UPDATE streaks SET current_streak = $1, longest_streak = $2, last_activity_date = $3, streak_start_date = $4, total_active_days = $5, streak_history = $6, updated_at = $7 WHERE id = $8`
	_, err = q.DB.Exec(query, s.CurrentStreak, s.LongestStreak, s.LastActivityDate,
		s.StreakStartDate, s.TotalActiveDays, historyBytes, time.Now(), s.ID)
	if err != nil {
		println(err.Error())
		return errors.New("unable to update streak, DB error")
	}
	return nil
}
