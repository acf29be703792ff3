package sqlite

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"event-management-api/internal/model"
)

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	row := eventRowFrom(e)
	row.ID = 0
	row.CreatedAt = time.Now().UTC()
	if _, err := s.db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return mapErr(err)
	}
	e.ID, e.CreatedAt = row.ID, row.CreatedAt
	return nil
}

func (s *Store) EventByID(ctx context.Context, id int64) (*model.Event, error) {
	row := new(eventRow)
	if err := s.db.NewSelect().Model(row).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	e := row.toModel()
	return &e, nil
}

// SQLite sorts NULL first on ASC and compares TEXT with BINARY collation.
func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	var rows []eventRow
	if err := s.db.NewSelect().Model(&rows).OrderExpr("start_at ASC, id ASC").Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	out := make([]model.Event, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out, nil
}

func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	res, err := s.db.NewUpdate().
		Model(eventRowFrom(e)).
		Column("title", "description", "start_at", "end_at", "location").
		WherePK().
		Exec(ctx)
	if err != nil {
		return mapErr(err)
	}
	return affectedOne(res)
}

func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*scheduleRow)(nil)).Where("event_id = ?", id).Exec(ctx); err != nil {
			return mapErr(err)
		}
		res, err := tx.NewDelete().Model((*eventRow)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return mapErr(err)
		}
		return affectedOne(res)
	})
}
