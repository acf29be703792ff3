package handler

import (
	"errors"
	"net/http"

	"event-management-api/internal/auth"
	"event-management-api/internal/model"
	"event-management-api/internal/problem"
	"event-management-api/internal/store"
)

// Vendors, attendees and schedule items are public create+list resources.

const (
	defaultVendorName    = "Unnamed Vendor"
	defaultAttendeeName  = "Anonymous"
	defaultScheduleTitle = "Untitled"
)

type vendorJSON struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
	Notes   *string `json:"notes"`
}

type vendorInput struct {
	Name    optional[string] `json:"name"`
	Contact optional[string] `json:"contact"`
	Notes   optional[string] `json:"notes"`
}

func (h *Handler) ListVendors(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	vs, err := h.store.ListVendors(r.Context())
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	out := make([]vendorJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, vendorJSON{ID: v.ID, Name: v.Name, Contact: v.Contact, Notes: v.Notes})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateVendor(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	var in vendorInput
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}
	v := &model.Vendor{
		Name:    in.Name.Or(defaultVendorName),
		Contact: in.Contact.Ptr(),
		Notes:   in.Notes.Ptr(),
	}
	if err := h.store.CreateVendor(r.Context(), v); err != nil {
		problem.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: v.ID})
}

type attendeeJSON struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	TicketType *string `json:"ticket_type"`
}

type attendeeInput struct {
	Name       optional[string] `json:"name"`
	Email      optional[string] `json:"email"`
	TicketType optional[string] `json:"ticket_type"`
}

func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	as, err := h.store.ListAttendees(r.Context())
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	out := make([]attendeeJSON, 0, len(as))
	for _, a := range as {
		out = append(out, attendeeJSON{ID: a.ID, Name: a.Name, Email: a.Email, TicketType: a.TicketType})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateAttendee(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	var in attendeeInput
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}
	a := &model.Attendee{
		Name:       in.Name.Or(defaultAttendeeName),
		Email:      in.Email.Ptr(),
		TicketType: in.TicketType.Ptr(),
	}
	if err := h.store.CreateAttendee(r.Context(), a); err != nil {
		problem.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: a.ID})
}

type scheduleJSON struct {
	ID      int64   `json:"id"`
	EventID int64   `json:"event_id"`
	Title   string  `json:"title"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Speaker *string `json:"speaker"`
}

type scheduleInput struct {
	EventID flexID           `json:"event_id"`
	Title   optional[string] `json:"title"`
	Start   optional[string] `json:"start"`
	End     optional[string] `json:"end"`
	Speaker optional[string] `json:"speaker"`
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	items, err := h.store.ListScheduleItems(r.Context())
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	out := make([]scheduleJSON, 0, len(items))
	for _, s := range items {
		out = append(out, scheduleJSON{
			ID:      s.ID,
			EventID: s.EventID,
			Title:   s.Title,
			Start:   s.Start,
			End:     s.End,
			Speaker: s.Speaker,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateScheduleItem(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	var in scheduleInput
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}
	eventID, ok := in.EventID.Int64()
	if !ok {
		problem.Write(w, r, model.ValidationError("event_id is required"))
		return
	}
	item := &model.ScheduleItem{
		EventID: eventID,
		Title:   in.Title.Or(defaultScheduleTitle),
		Start:   in.Start.Ptr(),
		End:     in.End.Ptr(),
		Speaker: in.Speaker.Ptr(),
	}
	err := h.store.CreateScheduleItem(r.Context(), item)
	if errors.Is(err, store.ErrInvalidReference) {
		problem.Write(w, r, model.Wrap(model.KindValidation, "invalid event id", err))
		return
	}
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: item.ID})
}
