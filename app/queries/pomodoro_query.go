package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrPomodoroNotFound = errors.New("pomodoro not found")

type PomodoroQueries struct {
	DB *sql.DB
}

const pomodoroColumns = `id, task_id, duration, start_time, end_time, status, notes, created_at`

const pomodoroJoinColumns = `p.id, p.task_id, p.duration, p.start_time, p.end_time, p.status, p.notes, p.created_at`

func scanPomodoro(row interface{ Scan(...interface{}) error }) (models.Pomodoro, error) {
	var p models.Pomodoro
	err := row.Scan(&p.ID, &p.TaskID, &p.Duration, &p.StartTime, &p.EndTime, &p.Status, &p.Notes, &p.CreatedAt)
	return p, err
}

func (q *PomodoroQueries) CreatePomodoro(p *models.Pomodoro) error {
	query := `INSERT INTO pomodoros (` + pomodoroColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := q.DB.Exec(query, p.ID, p.TaskID, p.Duration, p.StartTime, p.EndTime, p.Status, p.Notes, p.CreatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create pomodoro, DB error")
	}
	return nil
}

func (q *PomodoroQueries) GetPomodoroByID(id uuid.UUID) (models.Pomodoro, error) {
	query := `SELECT ` + pomodoroColumns + ` FROM pomodoros WHERE id = $1`
	p, err := scanPomodoro(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return p, ErrPomodoroNotFound
		}
		println(err.Error())
		return p, errors.New("unable to get pomodoro")
	}
	return p, nil
}

func (q *PomodoroQueries) GetPomodorosByTask(taskID uuid.UUID) ([]models.Pomodoro, error) {
	var res []models.Pomodoro
	query := `SELECT ` + pomodoroColumns + ` FROM pomodoros WHERE task_id = $1 ORDER BY created_at DESC`
	rows, err := q.DB.Query(query, taskID)
	if err != nil {
		return res, errors.New("unable to query pomodoros by task")
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanPomodoro(rows)
		if err != nil {
			return res, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (q *PomodoroQueries) GetPomodorosByUser(userID uuid.UUID) ([]models.Pomodoro, error) {
	var res []models.Pomodoro
	query := `SELECT ` + pomodoroJoinColumns + ` FROM pomodoros p JOIN tasks t ON p.task_id = t.id WHERE t.user_id = $1 ORDER BY p.created_at DESC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query pomodoros by user")
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanPomodoro(rows)
		if err != nil {
			return res, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (q *PomodoroQueries) UpdatePomodoro(p *models.Pomodoro) error {
	query := `UPDATE pomodoros SET duration = $1, start_time = $2, end_time = $3, status = $4, notes = $5 WHERE id = $6`
	res, err := q.DB.Exec(query, p.Duration, p.StartTime, p.EndTime, p.Status, p.Notes, p.ID)
	if err != nil {
		println(err.Error())
		return errors.New("unable to update pomodoro, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPomodoroNotFound
	}
	return nil
}

// GetCompletedInRange returns completed pomodoros belonging to the user's
// tasks whose end_time falls in [start, end).
func (q *PomodoroQueries) GetCompletedInRange(userID uuid.UUID, start, end time.Time) ([]models.Pomodoro, error) {
	var res []models.Pomodoro
	query := `SELECT ` + pomodoroJoinColumns + ` FROM pomodoros p JOIN tasks t ON p.task_id = t.id WHERE t.user_id = $1 AND p.status = $2 AND p.end_time >= $3 AND p.end_time < $4`
	rows, err := q.DB.Query(query, userID, models.PomodoroStatusCompleted, start, end)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query completed pomodoros")
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanPomodoro(rows)
		if err != nil {
			return res, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (q *PomodoroQueries) CountCompletedInRange(userID uuid.UUID, start, end time.Time) (int, error) {
	var cnt int
	query := `SELECT count(p.id) FROM pomodoros p JOIN tasks t ON p.task_id = t.id WHERE t.user_id = $1 AND p.status = $2 AND p.end_time >= $3 AND p.end_time < $4`
	if err := q.DB.QueryRow(query, userID, models.PomodoroStatusCompleted, start, end).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count completed pomodoros")
	}
	return cnt, nil
}

// SumFocusMinutesInRange sums completed pomodoro durations (converted to
// minutes) for the user's tasks within [start, end).
func (q *PomodoroQueries) SumFocusMinutesInRange(userID uuid.UUID, start, end time.Time) (float64, error) {
	var minutes sql.NullFloat64
	query := `SELECT sum(p.duration / 60.0) FROM pomodoros p JOIN tasks t ON p.task_id = t.id WHERE t.user_id = $1 AND p.status = $2 AND p.end_time >= $3 AND p.end_time < $4`
	if err := q.DB.QueryRow(query, userID, models.PomodoroStatusCompleted, start, end).Scan(&minutes); err != nil {
		return 0, errors.New("unable to sum focus minutes")
	}
	if !minutes.Valid {
		return 0, nil
	}
	return minutes.Float64, nil
}
