package queries

import (
	"database/sql"
	"errors"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserQueries struct {
	DB *sql.DB
}

func (q *UserQueries) CreateUser(u *models.User) error {
	query := `INSERT INTO users (id, email, name, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.DB.Exec(query, u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create user, DB error")
	}
	return nil
}

func (q *UserQueries) GetUserByEmail(email string) (models.User, error) {
	u := models.User{}
	query := `SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE email = $1`
	err := q.DB.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return u, ErrUserNotFound
		}
		println(err.Error())
		return u, errors.New("unable to get user by email")
	}
	return u, nil
}

func (q *UserQueries) GetUserByID(id uuid.UUID) (models.User, error) {
	u := models.User{}
	query := `SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE id = $1`
	err := q.DB.QueryRow(query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return u, ErrUserNotFound
		}
		println(err.Error())
		return u, errors.New("unable to get user by id")
	}
	return u, nil
}
