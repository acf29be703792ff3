package sqlite

import (
	"context"
	"time"

	"event-management-api/internal/model"
)

func (s *Store) CreateSession(ctx context.Context, sess *model.Session) error {
	row := &sessionRow{
		ID:        sess.ID,
		UserID:    sess.UserID,
		ExpiresAt: sess.ExpiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return mapErr(err)
	}
	sess.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) SessionByID(ctx context.Context, id string) (*model.Session, error) {
	row := new(sessionRow)
	if err := s.db.NewSelect().Model(row).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	return row.toModel(), nil
}

func (s *Store) RevokeSession(ctx context.Context, id string) error {
	res, err := s.db.NewUpdate().
		Model((*sessionRow)(nil)).
		Set("revoked = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}
