// Package store declares the repositories the API runs against. The postgres
// and sqlite subpackages implement them; both return plain model records and
// carry foreign keys as explicit ids.
package store

import (
	"context"
	"errors"

	"event-management-api/internal/model"
)

var (
	ErrNotFound = errors.New("store: not found")
	// ErrConflict reports a unique constraint violation.
	ErrConflict = errors.New("store: conflict")
	// ErrInvalidReference reports a foreign key that does not resolve.
	ErrInvalidReference = errors.New("store: invalid reference")
)

type Users interface {
	// CreateUser fills in ID and CreatedAt.
	CreateUser(ctx context.Context, u *model.User) error
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s *model.Session) error
	SessionByID(ctx context.Context, id string) (*model.Session, error)
	RevokeSession(ctx context.Context, id string) error
}

type Events interface {
	CreateEvent(ctx context.Context, e *model.Event) error
	EventByID(ctx context.Context, id int64) (*model.Event, error)
	// ListEvents orders by start with byte-wise string comparison, NULL
	// starts first, ties broken by id.
	ListEvents(ctx context.Context) ([]model.Event, error)
	UpdateEvent(ctx context.Context, e *model.Event) error
	// DeleteEvent removes the event together with its schedule items.
	DeleteEvent(ctx context.Context, id int64) error
}

type Vendors interface {
	CreateVendor(ctx context.Context, v *model.Vendor) error
	VendorByID(ctx context.Context, id int64) (*model.Vendor, error)
	ListVendors(ctx context.Context) ([]model.Vendor, error)
}

type Attendees interface {
	CreateAttendee(ctx context.Context, a *model.Attendee) error
	ListAttendees(ctx context.Context) ([]model.Attendee, error)
}

type Schedule interface {
	// CreateScheduleItem returns ErrInvalidReference when EventID does not
	// name an existing event.
	CreateScheduleItem(ctx context.Context, s *model.ScheduleItem) error
	ListScheduleItems(ctx context.Context) ([]model.ScheduleItem, error)
	// AssignVendor adds a "Vendor: <name>" schedule item to the event in a
	// single transaction. Unknown event or vendor ids yield
	// ErrInvalidReference and nothing is written.
	AssignVendor(ctx context.Context, eventID, vendorID int64) (*model.ScheduleItem, error)
}

type Store interface {
	Users
	Sessions
	Events
	Vendors
	Attendees
	Schedule

	Ping(ctx context.Context) error
	Close() error
}

// VendorScheduleItem builds the schedule entry that records a vendor
// assignment. Both backends share it so the title and speaker stay identical.
func VendorScheduleItem(eventID int64, v *model.Vendor) *model.ScheduleItem {
	speaker := ""
	if v.Contact != nil {
		speaker = *v.Contact
	}
	return &model.ScheduleItem{
		EventID: eventID,
		Title:   "Vendor: " + v.Name,
		Speaker: &speaker,
	}
}
