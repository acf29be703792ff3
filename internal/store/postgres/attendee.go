package postgres

import (
	"context"

	"event-management-api/internal/model"
)

func (s *Store) CreateAttendee(ctx context.Context, a *model.Attendee) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO attendees (name, email, ticket_type) VALUES ($1,$2,$3) RETURNING id`,
		a.Name, a.Email, a.TicketType,
	).Scan(&a.ID)
	return mapErr(err)
}

func (s *Store) ListAttendees(ctx context.Context) ([]model.Attendee, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, ticket_type FROM attendees ORDER BY id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []model.Attendee{}
	for rows.Next() {
		var a model.Attendee
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.TicketType); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, a)
	}
	return out, mapErr(rows.Err())
}
