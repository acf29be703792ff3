// Package storetest holds the behaviour every store.Store backend must share.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-management-api/internal/model"
	"event-management-api/internal/store"
)

// Run executes the suite. newStore must return an empty store for every call.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("EventCRUD", func(t *testing.T) { testEventCRUD(t, newStore(t)) })
	t.Run("EventOrdering", func(t *testing.T) { testEventOrdering(t, newStore(t)) })
	t.Run("DeleteEventCascades", func(t *testing.T) { testDeleteCascade(t, newStore(t)) })
	t.Run("VendorsAndAttendees", func(t *testing.T) { testVendorsAndAttendees(t, newStore(t)) })
	t.Run("ScheduleItems", func(t *testing.T) { testScheduleItems(t, newStore(t)) })
	t.Run("AssignVendor", func(t *testing.T) { testAssignVendor(t, newStore(t)) })
}

func ptr[T any](v T) *T { return &v }

func mustUser(t *testing.T, s store.Store, name string) *model.User {
	t.Helper()
	u := &model.User{Username: name, PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func mustEvent(t *testing.T, s store.Store, e *model.Event) *model.Event {
	t.Helper()
	require.NoError(t, s.CreateEvent(context.Background(), e))
	return e
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	u := mustUser(t, s, "alice")
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := s.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	got, err = s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	err = s.CreateUser(ctx, &model.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, store.ErrConflict)

	_, err = s.UserByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.UserByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testSessions(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "bob")

	sess := &model.Session{
		ID:        "7f1c0f8e-5d7e-4c4a-9a57-3f3d0f1c2b11",
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, s.CreateSession(ctx, sess))

	got, err := s.SessionByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.True(t, got.Active(time.Now()))
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)

	require.NoError(t, s.RevokeSession(ctx, sess.ID))
	got, err = s.SessionByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.Revoked)
	assert.False(t, got.Active(time.Now()))

	assert.ErrorIs(t, s.RevokeSession(ctx, "missing"), store.ErrNotFound)
	_, err = s.SessionByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testEventCRUD(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "carol")

	e := mustEvent(t, s, &model.Event{
		Title:     "Launch",
		Start:     ptr("2024-05-01T10:00"),
		Location:  ptr("Hall A"),
		CreatedBy: &u.ID,
	})
	assert.NotZero(t, e.ID)

	got, err := s.EventByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", got.Title)
	assert.Nil(t, got.Description)
	assert.Equal(t, "Hall A", *got.Location)
	assert.True(t, got.OwnedBy(u.ID))

	got.Title = "Launch v2"
	got.Location = nil
	got.Description = ptr("desc")
	require.NoError(t, s.UpdateEvent(ctx, got))

	again, err := s.EventByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch v2", again.Title)
	assert.Nil(t, again.Location)
	assert.Equal(t, "desc", *again.Description)
	assert.Equal(t, "2024-05-01T10:00", *again.Start)
	require.NotNil(t, again.CreatedBy)
	assert.Equal(t, u.ID, *again.CreatedBy)

	missing := *again
	missing.ID = e.ID + 100
	assert.ErrorIs(t, s.UpdateEvent(ctx, &missing), store.ErrNotFound)
	_, err = s.EventByID(ctx, missing.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteEvent(ctx, missing.ID), store.ErrNotFound)

	require.NoError(t, s.DeleteEvent(ctx, e.ID))
	_, err = s.EventByID(ctx, e.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testEventOrdering(t *testing.T, s store.Store) {
	ctx := context.Background()

	list, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	// "2024-10-01" sorts before "2024-9-30" when compared as text.
	mustEvent(t, s, &model.Event{Title: "sept", Start: ptr("2024-9-30")})
	mustEvent(t, s, &model.Event{Title: "oct", Start: ptr("2024-10-01")})
	mustEvent(t, s, &model.Event{Title: "nostart"})
	mustEvent(t, s, &model.Event{Title: "upper", Start: ptr("Z")})
	mustEvent(t, s, &model.Event{Title: "lower", Start: ptr("a")})
	mustEvent(t, s, &model.Event{Title: "oct-dup", Start: ptr("2024-10-01")})

	list, err = s.ListEvents(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(list))
	for _, e := range list {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"nostart", "oct", "oct-dup", "sept", "upper", "lower"}, titles)
}

func testDeleteCascade(t *testing.T, s store.Store) {
	ctx := context.Background()
	keep := mustEvent(t, s, &model.Event{Title: "keep"})
	drop := mustEvent(t, s, &model.Event{Title: "drop"})

	for _, ev := range []*model.Event{keep, drop, drop} {
		require.NoError(t, s.CreateScheduleItem(ctx, &model.ScheduleItem{EventID: ev.ID, Title: "talk"}))
	}
	require.NoError(t, s.DeleteEvent(ctx, drop.ID))

	items, err := s.ListScheduleItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].EventID)
}

func testVendorsAndAttendees(t *testing.T, s store.Store) {
	ctx := context.Background()

	vs, err := s.ListVendors(ctx)
	require.NoError(t, err)
	assert.NotNil(t, vs)
	assert.Empty(t, vs)

	as, err := s.ListAttendees(ctx)
	require.NoError(t, err)
	assert.NotNil(t, as)
	assert.Empty(t, as)

	v1 := &model.Vendor{Name: "Catering", Contact: ptr("cat@example.com")}
	v2 := &model.Vendor{Name: "Audio", Notes: ptr("bring cables")}
	require.NoError(t, s.CreateVendor(ctx, v1))
	require.NoError(t, s.CreateVendor(ctx, v2))
	assert.Less(t, v1.ID, v2.ID)

	got, err := s.VendorByID(ctx, v2.ID)
	require.NoError(t, err)
	assert.Equal(t, "Audio", got.Name)
	assert.Nil(t, got.Contact)
	_, err = s.VendorByID(ctx, v2.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)

	vs, err = s.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "Catering", vs[0].Name)
	assert.Equal(t, "bring cables", *vs[1].Notes)

	a := &model.Attendee{Name: "Dana", Email: ptr("dana@example.com"), TicketType: ptr("VIP")}
	require.NoError(t, s.CreateAttendee(ctx, a))
	require.NoError(t, s.CreateAttendee(ctx, &model.Attendee{Name: "Anonymous"}))

	as, err = s.ListAttendees(ctx)
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, a.ID, as[0].ID)
	assert.Equal(t, "VIP", *as[0].TicketType)
	assert.Nil(t, as[1].Email)
}

func testScheduleItems(t *testing.T, s store.Store) {
	ctx := context.Background()
	ev := mustEvent(t, s, &model.Event{Title: "conf"})

	item := &model.ScheduleItem{EventID: ev.ID, Title: "Keynote", Start: ptr("09:00"), Speaker: ptr("Eve")}
	require.NoError(t, s.CreateScheduleItem(ctx, item))
	assert.NotZero(t, item.ID)

	err := s.CreateScheduleItem(ctx, &model.ScheduleItem{EventID: ev.ID + 100, Title: "ghost"})
	assert.ErrorIs(t, err, store.ErrInvalidReference)

	items, err := s.ListScheduleItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Keynote", items[0].Title)
	assert.Equal(t, "09:00", *items[0].Start)
	assert.Nil(t, items[0].End)
}

func testAssignVendor(t *testing.T, s store.Store) {
	ctx := context.Background()
	ev := mustEvent(t, s, &model.Event{Title: "fair"})
	withContact := &model.Vendor{Name: "Bakery", Contact: ptr("555-0100")}
	noContact := &model.Vendor{Name: "Florist"}
	require.NoError(t, s.CreateVendor(ctx, withContact))
	require.NoError(t, s.CreateVendor(ctx, noContact))

	item, err := s.AssignVendor(ctx, ev.ID, withContact.ID)
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, ev.ID, item.EventID)
	assert.Equal(t, "Vendor: Bakery", item.Title)
	assert.Equal(t, "555-0100", *item.Speaker)
	assert.Nil(t, item.Start)
	assert.Nil(t, item.End)

	item, err = s.AssignVendor(ctx, ev.ID, noContact.ID)
	require.NoError(t, err)
	require.NotNil(t, item.Speaker)
	assert.Equal(t, "", *item.Speaker)

	_, err = s.AssignVendor(ctx, ev.ID, noContact.ID+100)
	assert.ErrorIs(t, err, store.ErrInvalidReference)
	_, err = s.AssignVendor(ctx, ev.ID+100, withContact.ID)
	assert.ErrorIs(t, err, store.ErrInvalidReference)

	items, err := s.ListScheduleItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
