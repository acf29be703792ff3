package postgres

import (
	"context"

	"event-management-api/internal/model"
	"event-management-api/internal/store"
)

const eventColumns = `id, title, description, start_at, end_at, location, created_by, created_at`

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO events (title, description, start_at, end_at, location, created_by)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING id, created_at`,
		e.Title, e.Description, e.Start, e.End, e.Location, e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt)
	return mapErr(err)
}

func (s *Store) EventByID(ctx context.Context, id int64) (*model.Event, error) {
	return scanEvent(s.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id,
	))
}

// COLLATE "C" keeps the comparison byte-wise regardless of the database locale.
func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events
		 ORDER BY start_at COLLATE "C" ASC NULLS FIRST, id ASC`,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, mapErr(rows.Err())
}

func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE events
		 SET title=$1, description=$2, start_at=$3, end_at=$4, location=$5
		 WHERE id=$6`,
		e.Title, e.Description, e.Start, e.End, e.Location, e.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM schedule_items WHERE event_id=$1`, id); err != nil {
		return mapErr(err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return tx.Commit(ctx)
}

func scanEvent(row scanner) (*model.Event, error) {
	e := &model.Event{}
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Start, &e.End,
		&e.Location, &e.CreatedBy, &e.CreatedAt,
	); err != nil {
		return nil, mapErr(err)
	}
	return e, nil
}
