package sqlite

import (
	"context"
	"time"

	"event-management-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	row := &userRow{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return mapErr(err)
	}
	u.ID, u.CreatedAt = row.ID, row.CreatedAt
	return nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := new(userRow)
	if err := s.db.NewSelect().Model(row).Where("username = ?", username).Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	return row.toModel(), nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*model.User, error) {
	row := new(userRow)
	if err := s.db.NewSelect().Model(row).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	return row.toModel(), nil
}
