package postgres

import (
	"context"

	"event-management-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1,$2)
		 RETURNING id, created_at`,
		u.Username, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	return mapErr(err)
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM users WHERE username = $1`, username,
	))
}

func (s *Store) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM users WHERE id = $1`, id,
	))
}

func scanUser(row scanner) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}
