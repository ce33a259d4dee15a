package acceptance

import (
	"net/http"
	"testing"
)

func TestWalletRequiresSession(t *testing.T) {
	ts := NewTestServer(t)

	if w := ts.do(t, http.MethodGet, "/wallet", nil, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("GET /wallet: status %d, want 401", w.Code)
	}
	if w := ts.do(t, http.MethodPost, "/wallet/deposit", map[string]int{"amount_cents": 100}, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("POST /wallet/deposit: status %d, want 401", w.Code)
	}
}

func TestDepositCents(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.login(t, "u123", "scooter4life")

	w := ts.do(t, http.MethodPost, "/wallet/deposit", map[string]int{"amount_cents": 500}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if body := decodeMap(t, w); body["balance_cents"] != float64(2500) {
		t.Errorf("balance = %v, want 2500", body["balance_cents"])
	}
}

func TestDepositDollars(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.login(t, "u125", "campus125")

	// Five dollars is exactly 500 cents on top of the 500-cent seed.
	w := ts.do(t, http.MethodPost, "/wallet/deposit", map[string]int{"amount_dollars": 5}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if body := decodeMap(t, w); body["balance_cents"] != float64(1000) {
		t.Errorf("balance = %v, want 1000", body["balance_cents"])
	}
}

func TestDepositRejectsBadAmounts(t *testing.T) {
	ts := NewTestServer(t)
	token := ts.login(t, "u123", "scooter4life")

	cases := []any{
		map[string]int{"amount_cents": 0},
		map[string]int{"amount_cents": -50},
		map[string]float64{"amount_dollars": -1.5},
		map[string]string{},
	}
	for _, body := range cases {
		w := ts.do(t, http.MethodPost, "/wallet/deposit", body, token)
		if w.Code != http.StatusBadRequest {
			t.Errorf("deposit %v: status %d, want 400", body, w.Code)
		}
	}

	// Balance untouched by the rejected deposits.
	w := ts.do(t, http.MethodGet, "/wallet", nil, token)
	if body := decodeMap(t, w); body["balance_cents"] != float64(2000) {
		t.Errorf("balance = %v, want untouched 2000", body["balance_cents"])
	}
}
