package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument(t *testing.T) {
	m := New()
	h := m.Instrument("GET /api/events/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/events/404" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("{}"))
	}))

	for _, p := range []string{"/api/events/1", "/api/events/2", "/api/events/404"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "GET /api/events/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "GET /api/events/{id}", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestAuthAttemptAndStoreUp(t *testing.T) {
	m := New()
	m.AuthAttempt("login", true)
	m.AuthAttempt("login", false)
	m.AuthAttempt("login", false)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "failure")))

	m.SetStoreUp(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreUp))
	m.SetStoreUp(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StoreUp))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.AuthAttempt("register", true)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `eventapi_auth_attempts_total{action="register",outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
