package queries

import (
	"database/sql"
	"errors"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var (
	ErrBoardNotFound  = errors.New("kanban board not found")
	ErrColumnNotFound = errors.New("kanban column not found")
)

type KanbanQueries struct {
	DB *sql.DB
}

func (q *KanbanQueries) CreateBoard(b *models.KanbanBoard) error {
	query := `INSERT INTO kanban_boards (id, goal_id, user_id, name, description, is_active, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := q.DB.Exec(query, b.ID, b.GoalID, b.UserID, b.Name, b.Description, b.IsActive, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create kanban board, DB error")
	}
	return nil
}

func (q *KanbanQueries) CreateColumn(c *models.KanbanColumn) error {
	query := `INSERT INTO kanban_columns (id, board_id, name, position, color, is_done_column, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := q.DB.Exec(query, c.ID, c.BoardID, c.Name, c.Position, c.Color, c.IsDoneColumn, c.CreatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create kanban column, DB error")
	}
	return nil
}

func (q *KanbanQueries) GetBoardByID(id, userID uuid.UUID) (models.KanbanBoard, error) {
	b := models.KanbanBoard{}
	query := `SELECT id, goal_id, user_id, name, description, is_active, created_at, updated_at FROM kanban_boards WHERE id = $1 AND user_id = $2`
	err := q.DB.QueryRow(query, id, userID).Scan(&b.ID, &b.GoalID, &b.UserID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return b, ErrBoardNotFound
		}
		return b, errors.New("unable to get kanban board")
	}
	return b, nil
}

func (q *KanbanQueries) GetBoardByGoal(goalID, userID uuid.UUID) (models.KanbanBoard, error) {
	b := models.KanbanBoard{}
	query := `SELECT id, goal_id, user_id, name, description, is_active, created_at, updated_at FROM kanban_boards WHERE goal_id = $1 AND user_id = $2`
	err := q.DB.QueryRow(query, goalID, userID).Scan(&b.ID, &b.GoalID, &b.UserID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return b, ErrBoardNotFound
		}
		println(err.Error())
		return b, errors.New("unable to get kanban board by goal")
	}
	return b, nil
}

func (q *KanbanQueries) GetBoardsByUser(userID uuid.UUID) ([]models.KanbanBoard, error) {
	var res []models.KanbanBoard
	query := `SELECT id, goal_id, user_id, name, description, is_active, created_at, updated_at FROM kanban_boards WHERE user_id = $1 AND is_active = TRUE ORDER BY created_at DESC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query kanban boards")
	}
	defer rows.Close()
	for rows.Next() {
		var b models.KanbanBoard
		if err := rows.Scan(&b.ID, &b.GoalID, &b.UserID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return res, err
		}
		res = append(res, b)
	}
	return res, nil
}

func (q *KanbanQueries) GetColumnsByBoard(boardID uuid.UUID) ([]models.KanbanColumn, error) {
	var res []models.KanbanColumn
	query := `SELECT id, board_id, name, position, color, is_done_column, created_at FROM kanban_columns WHERE board_id = $1 ORDER BY position ASC`
	rows, err := q.DB.Query(query, boardID)
	if err != nil {
		println(err.Error())
		return res, errors.New("unable to query kanban columns")
	}
	defer rows.Close()
	for rows.Next() {
		var c models.KanbanColumn
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Name, &c.Position, &c.Color, &c.IsDoneColumn, &c.CreatedAt); err != nil {
			return res, err
		}
		res = append(res, c)
	}
	return res, nil
}

func (q *KanbanQueries) GetColumnByID(id uuid.UUID) (models.KanbanColumn, error) {
	c := models.KanbanColumn{}
	query := `SELECT id, board_id, name, position, color, is_done_column, created_at FROM kanban_columns WHERE id = $1`
	err := q.DB.QueryRow(query, id).Scan(&c.ID, &c.BoardID, &c.Name, &c.Position, &c.Color, &c.IsDoneColumn, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, ErrColumnNotFound
		}
		return c, errors.New("unable to get kanban column")
	}
	return c, nil
}
