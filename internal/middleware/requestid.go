package middleware

import (
	"context"
	"net/http"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey ctxKey = "request_id"
	maxRequestID        = 128
)

// RequestID reuses an upstream X-Request-ID or mints a ULID, echoes it on the
// response and attaches a logger carrying it to the request context.
func RequestID(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestID {
				id = ulid.Make().String()
			}
			w.Header().Set(RequestIDHeader, id)

			reqLogger := logger.With().Str("request_id", id).Logger()
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			ctx = reqLogger.WithContext(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
