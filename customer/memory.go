package customer

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("customer not found")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Repository is the in-memory ledger. Every balance mutation is a
// read-modify-write under the repository mutex so concurrent deposits and
// debits for the same user cannot lose updates.
type Repository struct {
	mu    sync.RWMutex
	users map[string]*User
	seed  []User
}

func NewRepository(seed []User) *Repository {
	r := &Repository{
		users: make(map[string]*User, len(seed)),
		seed:  seed,
	}
	for _, u := range seed {
		c := u
		r.users[u.ID] = &c
	}
	return r
}

// Authenticate does an exact string match against the stored credential.
// Demo-only; this is not a security boundary.
func (r *Repository) Authenticate(id, password string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return ok && u.Password == password
}

func (r *Repository) Get(id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return *u, nil
}

// Deposit credits the wallet and returns the new balance. Non-positive
// amounts are rejected.
func (r *Repository) Deposit(id string, cents int64) (int64, error) {
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return 0, ErrNotFound
	}
	u.BalanceCents += cents
	return u.BalanceCents, nil
}

// Debit subtracts unconditionally and returns the new balance. The
// balance may go negative; admission control reads that as "blocked", the
// ledger itself never rejects a settlement.
func (r *Repository) Debit(id string, cents int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return 0, ErrNotFound
	}
	u.BalanceCents -= cents
	return u.BalanceCents, nil
}

// Reset restores every account to its seed balance.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.seed {
		c := s
		r.users[s.ID] = &c
	}
}
