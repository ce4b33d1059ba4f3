package queries

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrPerformanceRecordNotFound = errors.New("performance record not found")

type PerformanceQueries struct {
	DB *sql.DB
}

// UpsertPerformanceRecord inserts or fully overwrites the record for
// (user_id, date). Recomputing a day is idempotent by construction.
func (q *PerformanceQueries) UpsertPerformanceRecord(r *models.PerformanceRecord) error {
	activityBytes, err := json.Marshal(r.HourlyActivity)
	if err != nil {
		return err
	}
	query := `INSERT INTO performance_records (id, user_id, date, tasks_completed, pomodoros_completed, focus_time_minutes, productivity_score, hourly_activity, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (user_id, date) DO UPDATE SET
			tasks_completed = EXCLUDED.tasks_completed,
			pomodoros_completed = EXCLUDED.pomodoros_completed,
			focus_time_minutes = EXCLUDED.focus_time_minutes,
			productivity_score = EXCLUDED.productivity_score,
			hourly_activity = EXCLUDED.hourly_activity`
	_, err = q.DB.Exec(query, r.ID, r.UserID, r.Date, r.TasksCompleted, r.PomodorosCompleted,
		r.FocusTimeMinutes, r.ProductivityScore, activityBytes, r.CreatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to upsert performance record, DB error")
	}
	return nil
}

func (q *PerformanceQueries) GetRecordByDate(userID uuid.UUID, date time.Time) (models.PerformanceRecord, error) {
	r := models.PerformanceRecord{}
	var activityBytes []byte
	query := `SELECT id, user_id, date, tasks_completed, pomodoros_completed, focus_time_minutes, productivity_score, hourly_activity, created_at FROM performance_records WHERE user_id = $1 AND date = $2`
	err := q.DB.QueryRow(query, userID, date).Scan(&r.ID, &r.UserID, &r.Date, &r.TasksCompleted,
		&r.PomodorosCompleted, &r.FocusTimeMinutes, &r.ProductivityScore, &activityBytes, &r.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return r, ErrPerformanceRecordNotFound
		}
		println(err.Error())
		return r, errors.New("unable to get performance record")
	}
	if len(activityBytes) > 0 {
		if err := json.Unmarshal(activityBytes, &r.HourlyActivity); err != nil {
			return r, errors.New("unable to decode hourly activity")
		}
	}
	return r, nil
}

// GetRecordsInRange returns records with date in [start, end], newest first.
func (q *PerformanceQueries) GetRecordsInRange(userID uuid.UUID, start, end time.Time) ([]models.PerformanceRecord, error) {
	var res []models.PerformanceRecord
	query := `SELECT id, user_id, date, tasks_completed, pomodoros_completed, focus_time_minutes, productivity_score, hourly_activity, created_at FROM performance_records WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date DESC`
	rows, err := q.DB.Query(query, userID, start, end)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query performance records")
	}
	defer rows.Close()
	for rows.Next() {
		var r models.PerformanceRecord
		var activityBytes []byte
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.TasksCompleted, &r.PomodorosCompleted,
			&r.FocusTimeMinutes, &r.ProductivityScore, &activityBytes, &r.CreatedAt); err != nil {
			return res, err
		}
		if len(activityBytes) > 0 {
			if err := json.Unmarshal(activityBytes, &r.HourlyActivity); err != nil {
				return res, errors.New("unable to decode hourly activity")
			}
		}
		res = append(res, r)
	}
	return res, nil
}
