package model

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// Active reports whether the session can still authenticate requests at now.
func (s *Session) Active(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}

// Start and End are free-form strings; nothing parses them as time.
type Event struct {
	ID          int64
	Title       string
	Description *string
	Start       *string
	End         *string
	Location    *string
	CreatedBy   *int64
	CreatedAt   time.Time
}

// OwnedBy is false for events without a creator.
func (e *Event) OwnedBy(userID int64) bool {
	return e.CreatedBy != nil && *e.CreatedBy == userID
}

type Vendor struct {
	ID      int64
	Name    string
	Contact *string
	Notes   *string
}

type Attendee struct {
	ID         int64
	Name       string
	Email      *string
	TicketType *string
}

type ScheduleItem struct {
	ID      int64
	EventID int64
	Title   string
	Start   *string
	End     *string
	Speaker *string
}
