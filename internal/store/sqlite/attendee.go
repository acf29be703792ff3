package sqlite

import (
	"context"

	"event-management-api/internal/model"
)

func (s *Store) CreateAttendee(ctx context.Context, a *model.Attendee) error {
	row := &attendeeRow{Name: a.Name, Email: a.Email, TicketType: a.TicketType}
	if _, err := s.db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return mapErr(err)
	}
	a.ID = row.ID
	return nil
}

func (s *Store) ListAttendees(ctx context.Context) ([]model.Attendee, error) {
	var rows []attendeeRow
	if err := s.db.NewSelect().Model(&rows).Order("id").Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	out := make([]model.Attendee, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out, nil
}
