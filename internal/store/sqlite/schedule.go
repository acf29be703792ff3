package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"event-management-api/internal/model"
	"event-management-api/internal/store"
)

func (s *Store) CreateScheduleItem(ctx context.Context, item *model.ScheduleItem) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := eventExists(ctx, tx, item.EventID); err != nil {
			return err
		}
		return insertScheduleItem(ctx, tx, item)
	})
}

func (s *Store) ListScheduleItems(ctx context.Context) ([]model.ScheduleItem, error) {
	var rows []scheduleRow
	if err := s.db.NewSelect().Model(&rows).Order("id").Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	out := make([]model.ScheduleItem, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out, nil
}

func (s *Store) AssignVendor(ctx context.Context, eventID, vendorID int64) (*model.ScheduleItem, error) {
	var item *model.ScheduleItem
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		vrow := new(vendorRow)
		if err := tx.NewSelect().Model(vrow).Where("id = ?", vendorID).Scan(ctx); err != nil {
			if err = mapErr(err); errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: vendor", store.ErrInvalidReference)
			}
			return err
		}
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}
		v := vrow.toModel()
		item = store.VendorScheduleItem(eventID, &v)
		return insertScheduleItem(ctx, tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func eventExists(ctx context.Context, tx bun.Tx, id int64) error {
	ok, err := tx.NewSelect().Model((*eventRow)(nil)).Where("id = ?", id).Exists(ctx)
	if err != nil {
		return mapErr(err)
	}
	if !ok {
		return fmt.Errorf("%w: event", store.ErrInvalidReference)
	}
	return nil
}

func insertScheduleItem(ctx context.Context, tx bun.Tx, item *model.ScheduleItem) error {
	row := scheduleRowFrom(item)
	row.ID = 0
	if _, err := tx.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return mapErr(err)
	}
	item.ID = row.ID
	return nil
}
