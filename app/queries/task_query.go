package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskQueries struct {
	DB *sql.DB
}

const taskColumns = `id, user_id, title, description, status, priority, due_date, completed_at, estimated_pomodoros, completed_pomodoros, kanban_column_id, position, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.DueDate, &t.CompletedAt, &t.EstimatedPomodoros, &t.CompletedPomodoros,
		&t.KanbanColumnID, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *TaskQueries) CreateTask(t *models.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err := q.DB.Exec(query, t.ID, t.UserID, t.Title, t.Description, t.Status, t.Priority,
		t.DueDate, t.CompletedAt, t.EstimatedPomodoros, t.CompletedPomodoros,
		t.KanbanColumnID, t.Position, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create task, DB error")
	}
	return nil
}

func (q *TaskQueries) GetTaskByID(id uuid.UUID) (models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return t, ErrTaskNotFound
		}
		println(err.Error())
		return t, errors.New("unable to get task")
	}
	return t, nil
}

func (q *TaskQueries) GetTasksByUser(userID uuid.UUID, status models.TaskStatus) ([]models.Task, error) {
	var tasks []models.Task
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	args := []interface{}{userID}
	if status != "" {
		query = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`
		args = append(args, status)
	}
	rows, err := q.DB.Query(query, args...)
	if err != nil {
		println(err.Error())
		return tasks, errors.New("unable to query tasks")
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return tasks, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (q *TaskQueries) GetTasksByColumn(columnID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE kanban_column_id = $1 ORDER BY position ASC`
	rows, err := q.DB.Query(query, columnID)
	if err != nil {
		return tasks, errors.New("unable to query tasks by column")
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return tasks, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (q *TaskQueries) UpdateTask(t *models.Task) error {
	query := `UPDATE tasks SET title = $1, description = $2, status = $3, priority = $4, due_date = $5, completed_at = $6, estimated_pomodoros = $7, completed_pomodoros = $8, kanban_column_id = $9, position = $10, updated_at = $11 WHERE id = $12`
	res, err := q.DB.Exec(query, t.Title, t.Description, t.Status, t.Priority, t.DueDate,
		t.CompletedAt, t.EstimatedPomodoros, t.CompletedPomodoros, t.KanbanColumnID,
		t.Position, time.Now(), t.ID)
	if err != nil {
		println(err.Error())
		return errors.New("unable to update task, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (q *TaskQueries) DeleteTask(id, userID uuid.UUID) error {
	res, err := q.DB.Exec(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.New("unable to delete task, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (q *TaskQueries) IncrementCompletedPomodoros(id uuid.UUID) error {
	_, err := q.DB.Exec(`UPDATE tasks SET completed_pomodoros = completed_pomodoros + 1, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return errors.New("unable to increment completed pomodoros")
	}
	return nil
}

func (q *TaskQueries) CountCompletedInRange(userID uuid.UUID, start, end time.Time) (int, error) {
	var cnt int
	query := `SELECT count(*) FROM tasks WHERE user_id = $1 AND status = $2 AND completed_at >= $3 AND completed_at < $4`
	if err := q.DB.QueryRow(query, userID, models.TaskStatusCompleted, start, end).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count completed tasks")
	}
	return cnt, nil
}

func (q *TaskQueries) CountCreatedInRange(userID uuid.UUID, start, end time.Time) (int, error) {
	var cnt int
	query := `SELECT count(*) FROM tasks WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`
	if err := q.DB.QueryRow(query, userID, start, end).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count created tasks")
	}
	return cnt, nil
}

func (q *TaskQueries) HasCompletedTaskInRange(userID uuid.UUID, start, end time.Time) (bool, error) {
	cnt, err := q.CountCompletedInRange(userID, start, end)
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (q *TaskQueries) GetRecentTasks(userID uuid.UUID, limit int) ([]models.Task, error) {
	var tasks []models.Task
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2`
	rows, err := q.DB.Query(query, userID, limit)
	if err != nil {
		return tasks, errors.New("unable to query recent tasks")
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return tasks, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
