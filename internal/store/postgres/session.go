package postgres

import (
	"context"

	"event-management-api/internal/model"
	"event-management-api/internal/store"
)

func (s *Store) CreateSession(ctx context.Context, sess *model.Session) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO sessions (id, user_id, expires_at) VALUES ($1,$2,$3)
		 RETURNING created_at`,
		sess.ID, sess.UserID, sess.ExpiresAt,
	).Scan(&sess.CreatedAt)
	return mapErr(err)
}

func (s *Store) SessionByID(ctx context.Context, id string) (*model.Session, error) {
	sess := &model.Session{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, expires_at, revoked, created_at
		 FROM sessions WHERE id = $1`, id,
	).Scan(&sess.ID, &sess.UserID, &sess.ExpiresAt, &sess.Revoked, &sess.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return sess, nil
}

// revoke, never delete: the row stays for auditing
func (s *Store) RevokeSession(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sessions SET revoked = true WHERE id = $1`, id,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
