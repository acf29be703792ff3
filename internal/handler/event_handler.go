package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"event-management-api/internal/auth"
	"event-management-api/internal/model"
	"event-management-api/internal/problem"
	"event-management-api/internal/store"
)

const defaultEventTitle = "Untitled Event"

type eventJSON struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Location    *string `json:"location"`
	CreatedBy   *int64  `json:"created_by"`
}

func toEventJSON(e *model.Event) eventJSON {
	return eventJSON{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		Location:    e.Location,
		CreatedBy:   e.CreatedBy,
	}
}

type eventInput struct {
	Title       optional[string] `json:"title"`
	Description optional[string] `json:"description"`
	Start       optional[string] `json:"start"`
	End         optional[string] `json:"end"`
	Location    optional[string] `json:"location"`
}

// apply copies the fields present in the input onto e; null clears.
func (in eventInput) apply(e *model.Event) error {
	if in.Title.Set {
		if in.Title.Null {
			return model.ValidationError("title cannot be null")
		}
		e.Title = in.Title.Value
	}
	for _, f := range []struct {
		in  optional[string]
		dst **string
	}{
		{in.Description, &e.Description},
		{in.Start, &e.Start},
		{in.End, &e.End},
		{in.Location, &e.Location},
	} {
		if f.in.Set {
			*f.dst = f.in.Ptr()
		}
	}
	return nil
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		problem.Write(w, r, err)
		return
	}

	q := strings.ToLower(r.URL.Query().Get("q"))
	out := make([]eventJSON, 0, len(events))
	for i := range events {
		if q != "" && !matchesQuery(&events[i], q) {
			continue
		}
		out = append(out, toEventJSON(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// matchesQuery expects q already lower-cased.
func matchesQuery(e *model.Event, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	return e.Location != nil && strings.Contains(strings.ToLower(*e.Location), q)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request, who auth.Identity) {
	if !who.Authenticated() {
		problem.Write(w, r, model.AuthError("authentication required"))
		return
	}
	var in eventInput
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}

	uid := who.UserID
	e := &model.Event{
		Title:       in.Title.Or(defaultEventTitle),
		Description: in.Description.Ptr(),
		Start:       in.Start.Ptr(),
		End:         in.End.Ptr(),
		Location:    in.Location.Ptr(),
		CreatedBy:   &uid,
	}
	if err := h.store.CreateEvent(r.Context(), e); err != nil {
		problem.Write(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("event_id", e.ID).Msg("event created")
	writeJSON(w, http.StatusCreated, idResponse{ID: e.ID})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	e, err := h.loadEvent(r)
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventJSON(e))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request, who auth.Identity) {
	e, err := h.ownedEvent(r, who)
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	var in eventInput
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}
	if err := in.apply(e); err != nil {
		problem.Write(w, r, err)
		return
	}
	if err := h.store.UpdateEvent(r.Context(), e); err != nil {
		problem.Write(w, r, eventErr(err))
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request, who auth.Identity) {
	e, err := h.ownedEvent(r, who)
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	if err := h.store.DeleteEvent(r.Context(), e.ID); err != nil {
		problem.Write(w, r, eventErr(err))
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("event_id", e.ID).Msg("event deleted")
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

type assignVendorInput struct {
	VendorID flexID `json:"vendor_id"`
}

func (h *Handler) AssignVendor(w http.ResponseWriter, r *http.Request, who auth.Identity) {
	eventID, err := pathID(r, "event")
	if err != nil {
		problem.Write(w, r, err)
		return
	}
	if !who.Authenticated() {
		problem.Write(w, r, model.AuthError("authentication required"))
		return
	}
	var in assignVendorInput
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}
	vendorID, ok := in.VendorID.Int64()
	if !ok {
		problem.Write(w, r, model.ValidationError("invalid vendor or event id"))
		return
	}

	item, err := h.store.AssignVendor(r.Context(), eventID, vendorID)
	if errors.Is(err, store.ErrInvalidReference) {
		problem.Write(w, r, model.Wrap(model.KindValidation, "invalid vendor or event id", err))
		return
	}
	if err != nil {
		problem.Write(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("event_id", eventID).
		Int64("vendor_id", vendorID).
		Int64("schedule_item_id", item.ID).
		Msg("vendor assigned")
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) loadEvent(r *http.Request) (*model.Event, error) {
	id, err := pathID(r, "event")
	if err != nil {
		return nil, err
	}
	e, err := h.store.EventByID(r.Context(), id)
	if err != nil {
		return nil, eventErr(err)
	}
	return e, nil
}

// ownedEvent reports a missing event before checking ownership.
func (h *Handler) ownedEvent(r *http.Request, who auth.Identity) (*model.Event, error) {
	e, err := h.loadEvent(r)
	if err != nil {
		return nil, err
	}
	if !who.Authenticated() || !e.OwnedBy(who.UserID) {
		return nil, model.ForbiddenError("not allowed")
	}
	return e, nil
}

func eventErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return model.Wrap(model.KindNotFound, "event not found", err)
	}
	return err
}
