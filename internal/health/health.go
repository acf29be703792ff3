// Package health reports liveness and readiness over HTTP and the standard
// gRPC health protocol. Readiness means the store answers a ping.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// Observer is told about every readiness probe result.
type Observer interface {
	SetStoreUp(up bool)
}

type Checker struct {
	store    Pinger
	observer Observer
}

// NewChecker accepts a nil observer.
func NewChecker(store Pinger, observer Observer) *Checker {
	return &Checker{store: store, observer: observer}
}

func (c *Checker) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	err := c.store.Ping(ctx)
	if c.observer != nil {
		c.observer.SetStoreUp(err == nil)
	}
	return err
}

type probeStatus struct {
	Status string `json:"status"`
}

func (c *Checker) Healthz(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "ok")
}

func (c *Checker) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := c.Ready(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("readiness check failed")
		writeStatus(w, http.StatusServiceUnavailable, "unavailable")
		return
	}
	writeStatus(w, http.StatusOK, "ready")
}

func writeStatus(w http.ResponseWriter, code int, s string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(probeStatus{Status: s})
}
