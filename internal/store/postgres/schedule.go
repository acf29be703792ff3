package postgres

import (
	"context"
	"errors"
	"fmt"

	"event-management-api/internal/model"
	"event-management-api/internal/store"
)

const insertScheduleItem = `INSERT INTO schedule_items (event_id, title, start_at, end_at, speaker)
	VALUES ($1,$2,$3,$4,$5) RETURNING id`

// The FK on schedule_items.event_id does the existence check.
func (s *Store) CreateScheduleItem(ctx context.Context, item *model.ScheduleItem) error {
	err := s.pool.QueryRow(ctx, insertScheduleItem,
		item.EventID, item.Title, item.Start, item.End, item.Speaker,
	).Scan(&item.ID)
	return mapErr(err)
}

func (s *Store) ListScheduleItems(ctx context.Context) ([]model.ScheduleItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, event_id, title, start_at, end_at, speaker
		 FROM schedule_items ORDER BY id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []model.ScheduleItem{}
	for rows.Next() {
		var it model.ScheduleItem
		if err := rows.Scan(&it.ID, &it.EventID, &it.Title, &it.Start, &it.End, &it.Speaker); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, it)
	}
	return out, mapErr(rows.Err())
}

func (s *Store) AssignVendor(ctx context.Context, eventID, vendorID int64) (*model.ScheduleItem, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	v := &model.Vendor{}
	err = tx.QueryRow(ctx,
		`SELECT id, name, contact, notes FROM vendors WHERE id = $1`, vendorID,
	).Scan(&v.ID, &v.Name, &v.Contact, &v.Notes)
	if err := missingAsInvalid(err, "vendor"); err != nil {
		return nil, err
	}

	// lock the event row so a concurrent delete cannot orphan the item
	var found int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM events WHERE id = $1 FOR SHARE`, eventID,
	).Scan(&found)
	if err := missingAsInvalid(err, "event"); err != nil {
		return nil, err
	}

	item := store.VendorScheduleItem(eventID, v)
	err = tx.QueryRow(ctx, insertScheduleItem,
		item.EventID, item.Title, item.Start, item.End, item.Speaker,
	).Scan(&item.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func missingAsInvalid(err error, what string) error {
	err = mapErr(err)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", store.ErrInvalidReference, what)
	}
	return err
}
