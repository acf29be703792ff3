// Package handler serves the JSON API. Every handler receives the caller's
// identity explicitly; the session middleware resolves it once per request.
package handler

import (
	"net/http"

	"event-management-api/internal/auth"
	"event-management-api/internal/metrics"
	"event-management-api/internal/middleware"
	"event-management-api/internal/store"
)

// Store is the part of the repository layer the handlers touch. Users and
// sessions are reached only through the auth manager.
type Store interface {
	store.Events
	store.Vendors
	store.Attendees
	store.Schedule
}

type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	store   Store
	auth    *auth.Manager
	metrics *metrics.Metrics
	cookie  CookieConfig
}

func New(st Store, am *auth.Manager, m *metrics.Metrics, cookie CookieConfig) *Handler {
	if cookie.Name == "" {
		cookie.Name = "session"
	}
	return &Handler{store: st, auth: am, metrics: m, cookie: cookie}
}

// identityHandler is a handler that is handed the resolved caller.
type identityHandler func(w http.ResponseWriter, r *http.Request, who auth.Identity)

func (f identityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f(w, r, middleware.IdentityFrom(r.Context()))
}
