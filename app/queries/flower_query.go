package queries

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrGardenNotFound = errors.New("garden not found")

type FlowerQueries struct {
	DB *sql.DB
}

func (q *FlowerQueries) CreateFlower(f *models.Flower) error {
	query := `INSERT INTO flowers (id, user_id, task_id, type, color, earned_from_task_title, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := q.DB.Exec(query, f.ID, f.UserID, f.TaskID, f.Type, f.Color, f.EarnedFromTaskTitle, f.CreatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create flower, DB error")
	}
	return nil
}

func (q *FlowerQueries) GetFlowersByUser(userID uuid.UUID) ([]models.Flower, error) {
	var res []models.Flower
	query := `SELECT id, user_id, task_id, type, color, earned_from_task_title, created_at FROM flowers WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query flowers")
	}
	defer rows.Close()
	for rows.Next() {
		var f models.Flower
		if err := rows.Scan(&f.ID, &f.UserID, &f.TaskID, &f.Type, &f.Color, &f.EarnedFromTaskTitle, &f.CreatedAt); err != nil {
			return res, err
		}
		res = append(res, f)
	}
	return res, nil
}

func (q *FlowerQueries) GetRecentFlowers(userID uuid.UUID, limit int) ([]models.Flower, error) {
	var res []models.Flower
	query := `SELECT id, user_id, task_id, type, color, earned_from_task_title, created_at FROM flowers WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := q.DB.Query(query, userID, limit)
	if err != nil {
		return res, errors.New("unable to query recent flowers")
	}
	defer rows.Close()
	for rows.Next() {
		var f models.Flower
		if err := rows.Scan(&f.ID, &f.UserID, &f.TaskID, &f.Type, &f.Color, &f.EarnedFromTaskTitle, &f.CreatedAt); err != nil {
			return res, err
		}
		res = append(res, f)
	}
	return res, nil
}

func (q *FlowerQueries) CountFlowersInRange(userID uuid.UUID, start, end time.Time) (int, error) {
	var cnt int
	query := `SELECT count(*) FROM flowers WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`
	if err := q.DB.QueryRow(query, userID, start, end).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count flowers")
	}
	return cnt, nil
}

func (q *FlowerQueries) GetGardenByUser(userID uuid.UUID) (models.Garden, error) {
	g := models.Garden{}
	query := `SELECT id, user_id, total_flowers, green_flowers, orange_flowers, red_flowers, rare_flowers, consecutive_high_priority_pomodoros, created_at, updated_at FROM gardens WHERE user_id = $1`
	err := q.DB.QueryRow(query, userID).Scan(&g.ID, &g.UserID, &g.TotalFlowers, &g.GreenFlowers,
		&g.OrangeFlowers, &g.RedFlowers, &g.RareFlowers, &g.ConsecutiveHighPriorityPomodoros, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return g, ErrGardenNotFound
		}
		println(err.Error())
		return g, errors.New("unable to get garden")
	}
	return g, nil
}

// InsertGarden wraps the driver error so callers can detect the unique
// violation raised when two requests race on first access.
func (q *FlowerQueries) InsertGarden(g *models.Garden) error {
	query := `INSERT INTO gardens (id, user_id, total_flowers, green_flowers, orange_flowers, red_flowers, rare_flowers, consecutive_high_priority_pomodoros, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := q.DB.Exec(query, g.ID, g.UserID, g.TotalFlowers, g.GreenFlowers, g.OrangeFlowers,
		g.RedFlowers, g.RareFlowers, g.ConsecutiveHighPriorityPomodoros, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("unable to insert garden: %w", err)
	}
	return nil
}

func (q *FlowerQueries) UpdateGarden(g *models.Garden) error {
	query := `UPDATE gardens SET total_flowers = $1, green_flowers = $2, orange_flowers = $3, red_flowers = $4, rare_flowers = $5, consecutive_high_priority_pomodoros = $6, updated_at = $7 WHERE id = $8`
	_, err := q.DB.Exec(query, g.TotalFlowers, g.GreenFlowers, g.OrangeFlowers, g.RedFlowers,
		g.RareFlowers, g.ConsecutiveHighPriorityPomodoros, time.Now(), g.ID)
	if err != nil {
		println(err.Error())
		return errors.New("unable to update garden, DB error")
	}
	return nil
}
