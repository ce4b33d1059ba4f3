package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrGoalNotFound = errors.New("goal not found")

type GoalQueries struct {
	DB *sql.DB
}

const goalColumns = `id, user_id, title, description, type, category, status, target_value, current_value, start_date, end_date, completed_at, created_at, updated_at`

func scanGoal(row interface{ Scan(...interface{}) error }) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.Type, &g.Category, &g.Status,
		&g.TargetValue, &g.CurrentValue, &g.StartDate, &g.EndDate, &g.CompletedAt, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (q *GoalQueries) CreateGoal(g *models.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err := q.DB.Exec(query, g.ID, g.UserID, g.Title, g.Description, g.Type, g.Category, g.Status,
		g.TargetValue, g.CurrentValue, g.StartDate, g.EndDate, g.CompletedAt, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create goal, DB error")
	}
	return nil
}

func (q *GoalQueries) GetGoalByID(id uuid.UUID) (models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`
	g, err := scanGoal(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return g, ErrGoalNotFound
		}
		println(err.Error())
		return g, errors.New("unable to get goal")
	}
	return g, nil
}

func (q *GoalQueries) GetGoalsByUser(userID uuid.UUID, status models.GoalStatus) ([]models.Goal, error) {
	var res []models.Goal
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`
	args := []interface{}{userID}
	if status != "" {
		query = `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`
		args = append(args, status)
	}
	rows, err := q.DB.Query(query, args...)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query goals")
	}
	defer rows.Close()
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return res, err
		}
		res = append(res, g)
	}
	return res, nil
}

func (q *GoalQueries) GetGoalsByType(userID uuid.UUID, goalType models.GoalType) ([]models.Goal, error) {
	var res []models.Goal
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 AND type = $2 AND status = $3 ORDER BY created_at DESC`
	rows, err := q.DB.Query(query, userID, goalType, models.GoalStatusActive)
	if err != nil {
		return res, errors.New("unable to query goals by type")
	}
	defer rows.Close()
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return res, err
		}
		res = append(res, g)
	}
	return res, nil
}

func (q *GoalQueries) GetActiveGoalsByCategory(userID uuid.UUID, category models.GoalCategory) ([]models.Goal, error) {
	var res []models.Goal
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 AND category = $2 AND status = $3`
	rows, err := q.DB.Query(query, userID, category, models.GoalStatusActive)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query active goals by category")
	}
	defer rows.Close()
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return res, err
		}
		res = append(res, g)
	}
	return res, nil
}

func (q *GoalQueries) UpdateGoal(g *models.Goal) error {
	query := `UPDATE goals SET title = $1, description = $2, status = $3, target_value = $4, current_value = $5, end_date = $6, completed_at = $7, updated_at = $8 WHERE id = $9`
	res, err := q.DB.Exec(query, g.Title, g.Description, g.Status, g.TargetValue, g.CurrentValue,
		g.EndDate, g.CompletedAt, time.Now(), g.ID)
	if err != nil {
		println(err.Error())
		return errors.New("unable to update goal, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (q *GoalQueries) DeleteGoal(id, userID uuid.UUID) error {
	res, err := q.DB.Exec(`DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.New("unable to delete goal, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}
