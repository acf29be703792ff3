package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"event-management-api/internal/model"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type okResponse struct {
	OK bool `json:"ok"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

// decodeJSON treats an empty body as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return model.ValidationError("request body too large")
		}
		return model.Wrap(model.KindValidation, "invalid JSON body", err)
	}
	return nil
}

// pathID parses {id}. A non-numeric id names no resource, hence 404.
func pathID(r *http.Request, what string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, model.NotFoundError(what + " not found")
	}
	return id, nil
}

// optional distinguishes an absent field (Set false) from an explicit null.
type optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr is nil when the field is absent or null.
func (o optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// Or returns def when the field is absent or null.
func (o optional[T]) Or(def T) T {
	if !o.Set || o.Null {
		return def
	}
	return o.Value
}

// flexID accepts 12 or "12".
type flexID struct {
	optional[json.RawMessage]
}

func (f flexID) Int64() (int64, bool) {
	if !f.Set || f.Null {
		return 0, false
	}
	raw := strings.TrimSpace(string(f.Value))
	if s, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(s)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
