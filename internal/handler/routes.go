package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"event-management-api/internal/health"
	"event-management-api/internal/middleware"
	"event-management-api/internal/model"
	"event-management-api/internal/problem"
)

type RouterOptions struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	// StaticDir, when set, serves the browser frontend from disk.
	StaticDir string
	Health    *health.Checker
}

// Router wires every route behind the shared middleware stack.
func (h *Handler) Router(opts RouterOptions) http.Handler {
	mux := http.NewServeMux()
	api := func(pattern string, fn identityHandler) {
		mux.Handle(pattern, h.metrics.Instrument(pattern, fn))
	}

	api("POST /api/register", h.Register)
	api("POST /api/login", h.Login)
	api("POST /api/logout", h.Logout)
	api("GET /api/whoami", h.WhoAmI)

	api("GET /api/events", h.ListEvents)
	api("POST /api/events", h.CreateEvent)
	api("GET /api/events/{id}", h.GetEvent)
	api("PUT /api/events/{id}", h.UpdateEvent)
	api("DELETE /api/events/{id}", h.DeleteEvent)
	api("POST /api/events/{id}/assign_vendor", h.AssignVendor)

	api("GET /api/vendors", h.ListVendors)
	api("POST /api/vendors", h.CreateVendor)
	api("GET /api/attendees", h.ListAttendees)
	api("POST /api/attendees", h.CreateAttendee)
	api("GET /api/schedule", h.ListSchedule)
	api("POST /api/schedule", h.CreateScheduleItem)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		problem.Write(w, r, model.NotFoundError("not found"))
	})

	if opts.Health != nil {
		mux.HandleFunc("GET /healthz", opts.Health.Healthz)
		mux.HandleFunc("GET /readyz", opts.Health.Readyz)
	}
	mux.Handle("GET /metrics", h.metrics.Handler())

	if opts.StaticDir != "" {
		mountStatic(mux, opts.StaticDir)
	}

	return middleware.Chain(mux,
		middleware.RequestID(opts.Logger),
		middleware.AccessLog,
		middleware.CORS(opts.AllowedOrigins),
		middleware.Session(h.auth, h.cookie.Name),
	)
}
