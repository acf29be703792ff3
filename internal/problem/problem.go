// Package problem turns errors into the API's `{"error": "..."}` bodies.
package problem

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"event-management-api/internal/model"
)

type body struct {
	Error string `json:"error"`
}

// Write picks the status from the error kind and hides internal errors
// behind a generic message. 5xx are logged at error level, 4xx at warn.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := model.KindOf(err).HTTPStatus()
	msg := model.PublicMessage(err)

	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg("request failed")
	} else {
		logger.Warn().
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(msg)
	}

	WriteStatus(w, status, msg)
}

// WriteStatus writes an error body without logging.
func WriteStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body{Error: msg})
}
