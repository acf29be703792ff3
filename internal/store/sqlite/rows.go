package sqlite

import (
	"time"

	"github.com/uptrace/bun"

	"event-management-api/internal/model"
)

type userRow struct {
	bun.BaseModel `bun:"table:users"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Username     string    `bun:"username,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
}

func (r *userRow) toModel() *model.User {
	return &model.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

type sessionRow struct {
	bun.BaseModel `bun:"table:sessions"`

	ID        string    `bun:"id,pk"`
	UserID    int64     `bun:"user_id,notnull"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
	Revoked   bool      `bun:"revoked,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (r *sessionRow) toModel() *model.Session {
	return &model.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		ExpiresAt: r.ExpiresAt,
		Revoked:   r.Revoked,
		CreatedAt: r.CreatedAt,
	}
}

type eventRow struct {
	bun.BaseModel `bun:"table:events"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Title       string    `bun:"title,notnull"`
	Description *string   `bun:"description"`
	Start       *string   `bun:"start_at"`
	End         *string   `bun:"end_at"`
	Location    *string   `bun:"location"`
	CreatedBy   *int64    `bun:"created_by"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
}

func eventRowFrom(e *model.Event) *eventRow {
	return &eventRow{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		Location:    e.Location,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

func (r *eventRow) toModel() model.Event {
	return model.Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
		Location:    r.Location,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}
}

type vendorRow struct {
	bun.BaseModel `bun:"table:vendors"`

	ID      int64   `bun:"id,pk,autoincrement"`
	Name    string  `bun:"name,notnull"`
	Contact *string `bun:"contact"`
	Notes   *string `bun:"notes"`
}

func (r *vendorRow) toModel() model.Vendor {
	return model.Vendor{ID: r.ID, Name: r.Name, Contact: r.Contact, Notes: r.Notes}
}

type attendeeRow struct {
	bun.BaseModel `bun:"table:attendees"`

	ID         int64   `bun:"id,pk,autoincrement"`
	Name       string  `bun:"name,notnull"`
	Email      *string `bun:"email"`
	TicketType *string `bun:"ticket_type"`
}

func (r *attendeeRow) toModel() model.Attendee {
	return model.Attendee{ID: r.ID, Name: r.Name, Email: r.Email, TicketType: r.TicketType}
}

type scheduleRow struct {
	bun.BaseModel `bun:"table:schedule_items"`

	ID      int64   `bun:"id,pk,autoincrement"`
	EventID int64   `bun:"event_id,notnull"`
	Title   string  `bun:"title,notnull"`
	Start   *string `bun:"start_at"`
	End     *string `bun:"end_at"`
	Speaker *string `bun:"speaker"`
}

func scheduleRowFrom(s *model.ScheduleItem) *scheduleRow {
	return &scheduleRow{
		ID:      s.ID,
		EventID: s.EventID,
		Title:   s.Title,
		Start:   s.Start,
		End:     s.End,
		Speaker: s.Speaker,
	}
}

func (r *scheduleRow) toModel() model.ScheduleItem {
	return model.ScheduleItem{
		ID:      r.ID,
		EventID: r.EventID,
		Title:   r.Title,
		Start:   r.Start,
		End:     r.End,
		Speaker: r.Speaker,
	}
}
