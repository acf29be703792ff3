package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-management-api/internal/auth"
	"event-management-api/internal/handler"
	"event-management-api/internal/health"
	"event-management-api/internal/metrics"
	"event-management-api/internal/store/sqlite"
)

type testAPI struct {
	t       *testing.T
	srv     *httptest.Server
	store   *sqlite.Store
	metrics *metrics.Metrics
}

type apiOptions struct {
	staticDir string
	origins   []string
}

func newTestAPI(t *testing.T, opts ...apiOptions) *testAPI {
	t.Helper()
	var o apiOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	st, err := sqlite.OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	m := metrics.New()
	am := auth.NewManager(st, st, "test-secret-32-bytes-minimum----", time.Hour)
	h := handler.New(st, am, m, handler.CookieConfig{Name: "session"})
	srv := httptest.NewServer(h.Router(handler.RouterOptions{
		Logger:         zerolog.Nop(),
		AllowedOrigins: o.origins,
		StaticDir:      o.staticDir,
		Health:         health.NewChecker(st, m),
	}))
	t.Cleanup(srv.Close)

	return &testAPI{t: t, srv: srv, store: st, metrics: m}
}

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

// client returns a browser-like client with its own cookie jar.
func (a *testAPI) client() *client {
	jar, err := cookiejar.New(nil)
	require.NoError(a.t, err)
	return &client{t: a.t, base: a.srv.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body any) (int, []byte) {
	c.t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, c.base+path, rd)
	require.NoError(c.t, err)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, out
}

func (c *client) json(method, path string, body any, dst any) int {
	c.t.Helper()
	status, raw := c.do(method, path, body)
	if dst != nil {
		require.NoError(c.t, json.Unmarshal(raw, dst), "body: %s", raw)
	}
	return status
}

func (c *client) sessionCookie() *http.Cookie {
	u, _ := url.Parse(c.base)
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == "session" {
			return ck
		}
	}
	return nil
}

type obj = map[string]any

// signUp registers and logs in a fresh client.
func (a *testAPI) signUp(username string) (*client, int64) {
	a.t.Helper()
	c := a.client()
	status, body := c.do(http.MethodPost, "/api/register", obj{"username": username, "password": "pw-" + username})
	require.Equal(a.t, http.StatusCreated, status, string(body))

	var login struct {
		ID int64 `json:"id"`
	}
	status = c.json(http.MethodPost, "/api/login", obj{"username": username, "password": "pw-" + username}, &login)
	require.Equal(a.t, http.StatusOK, status)
	return c, login.ID
}

func (c *client) createEvent(body obj) int64 {
	c.t.Helper()
	var out struct {
		ID int64 `json:"id"`
	}
	require.Equal(c.t, http.StatusCreated, c.json(http.MethodPost, "/api/events", body, &out))
	return out.ID
}

func idPath(prefix string, id int64, suffix string) string {
	b, _ := json.Marshal(id)
	return prefix + string(b) + suffix
}

func TestRegister(t *testing.T) {
	api := newTestAPI(t)
	c := api.client()

	var out obj
	assert.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/register", obj{"username": "alice", "password": "x"}, &out))
	assert.Equal(t, obj{"ok": true}, out)

	out = nil
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, "/api/register", obj{"username": " alice ", "password": "y"}, &out))
	assert.Equal(t, "username already taken", out["error"])

	for _, body := range []any{obj{"username": "bob"}, obj{"password": "x"}, obj{}, nil, "{not json"} {
		status, raw := c.do(http.MethodPost, "/api/register", body)
		assert.Equal(t, http.StatusBadRequest, status, "body %v: %s", body, raw)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(api.metrics.AuthAttempts.WithLabelValues("register", "success")))
}

func TestLoginAndWhoAmI(t *testing.T) {
	api := newTestAPI(t)
	c := api.client()
	require.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/register", obj{"username": "carol", "password": "secret"}, nil))

	var who obj
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, "/api/whoami", nil, &who))
	assert.Equal(t, obj{"username": nil}, who)

	var bad obj
	assert.Equal(t, http.StatusUnauthorized, c.json(http.MethodPost, "/api/login", obj{"username": "carol", "password": "nope"}, &bad))
	assert.Equal(t, "invalid credentials", bad["error"])
	assert.Equal(t, http.StatusUnauthorized, c.json(http.MethodPost, "/api/login", obj{"username": "nobody", "password": "secret"}, nil))
	assert.Nil(t, c.sessionCookie())

	var login struct {
		OK       bool   `json:"ok"`
		Username string `json:"username"`
		ID       int64  `json:"id"`
	}
	require.Equal(t, http.StatusOK, c.json(http.MethodPost, "/api/login", obj{"username": "carol", "password": "secret"}, &login))
	assert.True(t, login.OK)
	assert.Equal(t, "carol", login.Username)
	assert.NotZero(t, login.ID)
	require.NotNil(t, c.sessionCookie())

	who = nil
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, "/api/whoami", nil, &who))
	assert.Equal(t, "carol", who["username"])
	assert.EqualValues(t, login.ID, who["id"])
}

func TestLoginCookieAttributes(t *testing.T) {
	api := newTestAPI(t)
	c := api.client()
	require.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/register", obj{"username": "dana", "password": "pw"}, nil))

	raw, err := json.Marshal(obj{"username": "dana", "password": "pw"})
	require.NoError(t, err)
	resp, err := http.Post(api.srv.URL+"/api/login", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var ck *http.Cookie
	for _, k := range resp.Cookies() {
		if k.Name == "session" {
			ck = k
		}
	}
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Greater(t, ck.MaxAge, 0)
}

func TestLogout(t *testing.T) {
	api := newTestAPI(t)
	c, _ := api.signUp("erin")
	token := c.sessionCookie().Value

	var out obj
	require.Equal(t, http.StatusOK, c.json(http.MethodPost, "/api/logout", nil, &out))
	assert.Equal(t, obj{"ok": true}, out)
	assert.Nil(t, c.sessionCookie())

	var who obj
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, "/api/whoami", nil, &who))
	assert.Nil(t, who["username"])
	assert.Equal(t, http.StatusUnauthorized, c.json(http.MethodPost, "/api/logout", nil, nil))

	// a copy of the old cookie is revoked server-side too
	replay := api.client()
	u, _ := url.Parse(api.srv.URL)
	replay.http.Jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: token, Path: "/"}})
	who = nil
	require.Equal(t, http.StatusOK, replay.json(http.MethodGet, "/api/whoami", nil, &who))
	assert.Nil(t, who["username"])
	assert.Equal(t, http.StatusUnauthorized, replay.json(http.MethodPost, "/api/events", obj{"title": "x"}, nil))
}

func TestForgedCookieIsAnonymous(t *testing.T) {
	api := newTestAPI(t)
	c := api.client()
	u, _ := url.Parse(api.srv.URL)
	c.http.Jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "not-a-jwt", Path: "/"}})

	var who obj
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, "/api/whoami", nil, &who))
	assert.Equal(t, obj{"username": nil}, who)
	status, _ := c.do(http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusOK, status)
}

type eventOut struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Location    *string `json:"location"`
	CreatedBy   *int64  `json:"created_by"`
}

func TestCreateAndGetEvent(t *testing.T) {
	api := newTestAPI(t)
	anon := api.client()

	var errOut obj
	assert.Equal(t, http.StatusUnauthorized, anon.json(http.MethodPost, "/api/events", obj{"title": "x"}, &errOut))
	assert.Equal(t, "authentication required", errOut["error"])

	c, uid := api.signUp("frank")
	id := c.createEvent(obj{
		"title":       "Expo",
		"description": "yearly",
		"start":       "2024-06-01 09:00",
		"end":         "2024-06-01 17:00",
		"location":    "Pier 9",
	})

	var got eventOut
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, idPath("/api/events/", id, ""), nil, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Expo", got.Title)
	assert.Equal(t, "yearly", *got.Description)
	assert.Equal(t, "2024-06-01 09:00", *got.Start)
	assert.Equal(t, "2024-06-01 17:00", *got.End)
	assert.Equal(t, "Pier 9", *got.Location)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, uid, *got.CreatedBy)

	for _, body := range []any{obj{}, obj{"title": nil}, nil} {
		id := c.createEvent(toObj(body))
		got = eventOut{}
		require.Equal(t, http.StatusOK, c.json(http.MethodGet, idPath("/api/events/", id, ""), nil, &got))
		assert.Equal(t, "Untitled Event", got.Title)
		assert.Nil(t, got.Start)
	}
}

func toObj(v any) obj {
	if o, ok := v.(obj); ok {
		return o
	}
	return nil
}

func TestGetEventNotFound(t *testing.T) {
	api := newTestAPI(t)
	c := api.client()
	for _, p := range []string{"/api/events/999", "/api/events/abc", "/api/events/-1"} {
		var out obj
		assert.Equal(t, http.StatusNotFound, c.json(http.MethodGet, p, nil, &out), p)
		assert.Equal(t, "event not found", out["error"], p)
	}
}

func TestUpdateAndDeleteAuthorization(t *testing.T) {
	api := newTestAPI(t)
	owner, _ := api.signUp("gina")
	other, _ := api.signUp("hank")
	anon := api.client()

	id := owner.createEvent(obj{"title": "Mine"})
	path := idPath("/api/events/", id, "")

	for name, c := range map[string]*client{"other user": other, "anonymous": anon} {
		var out obj
		assert.Equal(t, http.StatusForbidden, c.json(http.MethodPut, path, obj{"title": "Stolen"}, &out), name)
		assert.Equal(t, "not allowed", out["error"])
		assert.Equal(t, http.StatusForbidden, c.json(http.MethodDelete, path, nil, nil), name)
	}

	// missing beats forbidden
	assert.Equal(t, http.StatusNotFound, anon.json(http.MethodPut, "/api/events/9999", obj{"title": "x"}, nil))
	assert.Equal(t, http.StatusNotFound, other.json(http.MethodDelete, "/api/events/9999", nil, nil))

	var got eventOut
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, path, nil, &got))
	assert.Equal(t, "Mine", got.Title)

	var ok obj
	require.Equal(t, http.StatusOK, owner.json(http.MethodDelete, path, nil, &ok))
	assert.Equal(t, obj{"ok": true}, ok)
	assert.Equal(t, http.StatusNotFound, anon.json(http.MethodGet, path, nil, nil))
}

func TestPartialUpdate(t *testing.T) {
	api := newTestAPI(t)
	c, _ := api.signUp("ivy")
	id := c.createEvent(obj{"title": "Orig", "description": "d", "start": "s", "location": "L"})
	path := idPath("/api/events/", id, "")

	require.Equal(t, http.StatusOK, c.json(http.MethodPut, path, obj{"title": "New", "location": nil}, nil))

	var got eventOut
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, path, nil, &got))
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "d", *got.Description)
	assert.Equal(t, "s", *got.Start)
	assert.Nil(t, got.Location)

	var out obj
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPut, path, obj{"title": nil}, &out))
	assert.Equal(t, "title cannot be null", out["error"])

	// an empty body changes nothing
	require.Equal(t, http.StatusOK, c.json(http.MethodPut, path, nil, nil))
	got = eventOut{}
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, path, nil, &got))
	assert.Equal(t, "New", got.Title)
}

func TestListEventsOrderingAndFilter(t *testing.T) {
	api := newTestAPI(t)
	anon := api.client()

	var empty []eventOut
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, "/api/events", nil, &empty))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	c, _ := api.signUp("jack")
	c.createEvent(obj{"title": "September Gala", "start": "2024-9-30", "location": "Ballroom"})
	c.createEvent(obj{"title": "October Fair", "start": "2024-10-01", "location": "Town Square"})
	c.createEvent(obj{"title": "Undated meetup"})

	var list []eventOut
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, "/api/events", nil, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "Undated meetup", list[0].Title)
	assert.Equal(t, "October Fair", list[1].Title)
	assert.Equal(t, "September Gala", list[2].Title)

	list = nil
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, "/api/events?q=GALA", nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "September Gala", list[0].Title)

	list = nil
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, "/api/events?q=square", nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "October Fair", list[0].Title)

	list = nil
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, "/api/events?q=zzz", nil, &list))
	assert.Empty(t, list)
}

type scheduleOut struct {
	ID      int64   `json:"id"`
	EventID int64   `json:"event_id"`
	Title   string  `json:"title"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Speaker *string `json:"speaker"`
}

func TestAssignVendor(t *testing.T) {
	api := newTestAPI(t)
	c, _ := api.signUp("kate")
	anon := api.client()

	eventID := c.createEvent(obj{"title": "Market"})
	var v struct {
		ID int64 `json:"id"`
	}
	require.Equal(t, http.StatusCreated, anon.json(http.MethodPost, "/api/vendors", obj{"name": "Bakery", "contact": "555-0100"}, &v))
	var bare struct {
		ID int64 `json:"id"`
	}
	require.Equal(t, http.StatusCreated, anon.json(http.MethodPost, "/api/vendors", obj{"name": "Florist"}, &bare))

	assign := idPath("/api/events/", eventID, "/assign_vendor")
	assert.Equal(t, http.StatusUnauthorized, anon.json(http.MethodPost, assign, obj{"vendor_id": v.ID}, nil))

	var out obj
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, assign, obj{"vendor_id": 9999}, &out))
	assert.Equal(t, "invalid vendor or event id", out["error"])
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, "/api/events/9999/assign_vendor", obj{"vendor_id": v.ID}, nil))
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, assign, obj{}, nil))
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, assign, obj{"vendor_id": "abc"}, nil))

	var items []scheduleOut
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, "/api/schedule", nil, &items))
	assert.Empty(t, items)

	out = nil
	require.Equal(t, http.StatusOK, c.json(http.MethodPost, assign, obj{"vendor_id": v.ID}, &out))
	assert.Equal(t, obj{"ok": true}, out)
	// numeric strings are accepted too
	require.Equal(t, http.StatusOK, c.json(http.MethodPost, assign, obj{"vendor_id": idPath("", bare.ID, "")}, nil))
	// any logged-in user may assign, not only the event creator
	other, _ := api.signUp("liam")
	require.Equal(t, http.StatusOK, other.json(http.MethodPost, assign, obj{"vendor_id": v.ID}, nil))

	items = nil
	require.Equal(t, http.StatusOK, anon.json(http.MethodGet, "/api/schedule", nil, &items))
	require.Len(t, items, 3)
	assert.Equal(t, eventID, items[0].EventID)
	assert.Equal(t, "Vendor: Bakery", items[0].Title)
	assert.Equal(t, "555-0100", *items[0].Speaker)
	assert.Nil(t, items[0].Start)
	assert.Nil(t, items[0].End)
	assert.Equal(t, "Vendor: Florist", items[1].Title)
	require.NotNil(t, items[1].Speaker)
	assert.Equal(t, "", *items[1].Speaker)
}

func TestVendorsAttendeesSchedule(t *testing.T) {
	api := newTestAPI(t)
	c := api.client()

	for _, p := range []string{"/api/vendors", "/api/attendees", "/api/schedule"} {
		status, raw := c.do(http.MethodGet, p, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(raw), p)
	}

	require.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/vendors", obj{}, nil))
	require.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/vendors", obj{"name": "Audio", "notes": "cables"}, nil))
	_, raw := c.do(http.MethodGet, "/api/vendors", nil)
	assert.JSONEq(t, `[
		{"id":1,"name":"Unnamed Vendor","contact":null,"notes":null},
		{"id":2,"name":"Audio","contact":null,"notes":"cables"}
	]`, string(raw))

	require.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/attendees", nil, nil))
	require.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/attendees", obj{"name": "Mia", "email": "mia@example.com", "ticket_type": "VIP"}, nil))
	_, raw = c.do(http.MethodGet, "/api/attendees", nil)
	assert.JSONEq(t, `[
		{"id":1,"name":"Anonymous","email":null,"ticket_type":null},
		{"id":2,"name":"Mia","email":"mia@example.com","ticket_type":"VIP"}
	]`, string(raw))

	var out obj
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, "/api/schedule", obj{"title": "Orphan"}, &out))
	assert.Equal(t, "event_id is required", out["error"])
	out = nil
	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, "/api/schedule", obj{"event_id": 42}, &out))
	assert.Equal(t, "invalid event id", out["error"])

	owner, _ := api.signUp("nora")
	eventID := owner.createEvent(obj{"title": "Summit"})
	var created struct {
		ID int64 `json:"id"`
	}
	require.Equal(t, http.StatusCreated, c.json(http.MethodPost, "/api/schedule", obj{"event_id": eventID, "start": "10:00", "speaker": "Oli"}, &created))
	assert.NotZero(t, created.ID)

	var items []scheduleOut
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, "/api/schedule", nil, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Untitled", items[0].Title)
	assert.Equal(t, "Oli", *items[0].Speaker)
	assert.Nil(t, items[0].End)

	// deleting the event takes its schedule with it
	require.Equal(t, http.StatusOK, owner.json(http.MethodDelete, idPath("/api/events/", eventID, ""), nil, nil))
	items = nil
	require.Equal(t, http.StatusOK, c.json(http.MethodGet, "/api/schedule", nil, &items))
	assert.Empty(t, items)
}

func TestOperationalEndpoints(t *testing.T) {
	api := newTestAPI(t)
	c := api.client()

	status, raw := c.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	status, raw = c.do(http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ready"}`, string(raw))

	c.do(http.MethodGet, "/api/events", nil)
	status, raw = c.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), `eventapi_http_requests_total{method="GET",route="GET /api/events",status="200"} 1`)
	assert.Contains(t, string(raw), "eventapi_store_up 1")

	var out obj
	assert.Equal(t, http.StatusNotFound, c.json(http.MethodGet, "/api/nothing", nil, &out))
	assert.Equal(t, "not found", out["error"])

	req, err := http.NewRequest(http.MethodGet, api.srv.URL+"/api/whoami", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	api := newTestAPI(t, apiOptions{origins: []string{"http://app.test"}})

	req, err := http.NewRequest(http.MethodOptions, api.srv.URL+"/api/events", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://app.test", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestStaticFrontend(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"index.html":     "<h1>index</h1>",
		"dashboard.html": "<h1>dashboard</h1>",
		"auth.js":        "console.log('auth')",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	api := newTestAPI(t, apiOptions{staticDir: dir})
	c := api.client()

	for path, want := range map[string]string{
		"/":          "<h1>index</h1>",
		"/dashboard": "<h1>dashboard</h1>",
		"/auth.js":   "console.log('auth')",
	} {
		status, raw := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, want, string(raw), path)
	}

	status, _ := c.do(http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusOK, status)
}
