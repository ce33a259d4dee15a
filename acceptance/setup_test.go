package acceptance

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Colby-williams/hackathon-2025/api"
	"github.com/Colby-williams/hackathon-2025/customer"
	"github.com/Colby-williams/hackathon-2025/internal/o11y"
	"github.com/Colby-williams/hackathon-2025/rental"
	"github.com/Colby-williams/hackathon-2025/session"
	"github.com/Colby-williams/hackathon-2025/vehicle"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

type TestServer struct {
	Router    *gin.Engine
	Vehicles  *vehicle.Registry
	Customers *customer.Repository
	Sessions  *session.Store
	Engine    *rental.Engine
	Clock     *fakeClock
}

// NewTestServer composes the whole app against fresh in-memory state and
// a controllable clock. Each test gets its own instance.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	vr := vehicle.NewRegistry(vehicle.Seed())
	cr := customer.NewRepository(customer.Seed())
	sessions := session.NewStore()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	engine := rental.NewEngine(vr, cr, 0).WithClock(clock.Now)

	obs := &o11y.Observability{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry: prometheus.NewRegistry(),
	}

	a := api.New(api.Config{
		Vehicles:      vr,
		Customers:     cr,
		Sessions:      sessions,
		Engine:        engine,
		Obs:           obs,
		GoogleMapsKey: "test-maps-key",
	})

	return &TestServer{
		Router:    a.Router(),
		Vehicles:  vr,
		Customers: cr,
		Sessions:  sessions,
		Engine:    engine,
		Clock:     clock,
	}
}

// do runs one request. A non-empty sessionToken is sent as the auth
// cookie; a nil body sends no payload.
func (ts *TestServer) do(t *testing.T, method, path string, body any, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: sessionToken})
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// login authenticates and returns the session token from the Set-Cookie
// header.
func (ts *TestServer) login(t *testing.T, username, password string) string {
	t.Helper()

	w := ts.do(t, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", username, w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var l []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return l
}
