package acceptance

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if body := decodeMap(t, w); body["ok"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestConfigJS(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.do(t, http.MethodGet, "/config.js", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"GOOGLE_MAPS_KEY": "test-maps-key"`) {
		t.Errorf("config.js body = %q", w.Body.String())
	}
}

func TestRecharge(t *testing.T) {
	ts := NewTestServer(t)

	if w := ts.do(t, http.MethodPost, "/bikes/b1/recharge", nil, ""); w.Code != http.StatusOK {
		t.Errorf("recharge: status %d", w.Code)
	}
	if w := ts.do(t, http.MethodPost, "/bikes/b99/recharge", nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("recharge unknown bike: status %d, want 404", w.Code)
	}
}

func TestDebugResetRestoresSeedState(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.login(t, "u125", "campus125")

	if w := ts.do(t, http.MethodPost, "/wallet/deposit", map[string]int{"amount_cents": 700}, token); w.Code != http.StatusOK {
		t.Fatalf("deposit: status %d", w.Code)
	}
	if w := ts.do(t, http.MethodPost, "/rentals/start", map[string]string{"bike_id": "b2"}, token); w.Code != http.StatusCreated {
		t.Fatalf("start: status %d", w.Code)
	}

	if w := ts.do(t, http.MethodPost, "/debug/reset", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("reset: status %d", w.Code)
	}

	// Sessions are gone with everything else.
	if w := ts.do(t, http.MethodGet, "/wallet", nil, token); w.Code != http.StatusUnauthorized {
		t.Errorf("session survived reset: status %d", w.Code)
	}

	// Fleet available, balances back at seed values.
	fresh := ts.login(t, "u125", "campus125")
	w := ts.do(t, http.MethodGet, "/wallet", nil, fresh)
	if body := decodeMap(t, w); body["balance_cents"] != float64(500) {
		t.Errorf("balance after reset = %v, want 500", body["balance_cents"])
	}
	b2 := findBike(t, decodeList(t, ts.do(t, http.MethodGet, "/bikes", nil, "")), "b2")
	if b2["is_available"] != true || b2["rented_by_user_id"] != nil {
		t.Errorf("fleet after reset: %v", b2)
	}
}
