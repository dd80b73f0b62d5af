package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

// GetOrCreateByAnonCode finds the learner behind an anonymous code,
// creating the row on first login.
func (r *UserStore) GetOrCreateByAnonCode(ctx context.Context, anonCode, className string) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, anon_code, class_name, status, created_at, updated_at
		FROM users
		WHERE anon_code = $1
	`, anonCode).Scan(
		&u.UserId,
		&u.AnonCode,
		&u.ClassName,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("could not look up user by anon code: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO users (anon_code, class_name)
		VALUES ($1, $2)
		RETURNING user_id, anon_code, class_name, status, created_at, updated_at
	`, anonCode, className).Scan(
		&u.UserId,
		&u.AnonCode,
		&u.ClassName,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	return u, nil
}

func (r *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT user_id, anon_code, class_name, status, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`, id)

	u := &models.User{}
	err := row.Scan(
		&u.UserId,
		&u.AnonCode,
		&u.ClassName,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}
