package rental

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Colby-williams/hackathon-2025/customer"
	"github.com/Colby-williams/hackathon-2025/pricing"
	"github.com/Colby-williams/hackathon-2025/vehicle"
)

var (
	ErrNotFound        = errors.New("rental not found")
	ErrUserActive      = errors.New("user already has an active rental")
	ErrNotOwner        = errors.New("rental belongs to another user")
	ErrPaymentRequired = errors.New("balance is negative")
)

// DefaultMaxRide caps runaway rides; a status read past the cap force-ends
// the rental server-side (auto-checkout).
const DefaultMaxRide = 240 * time.Minute

// Engine owns the rental records and drives every transition. The engine
// mutex covers the rentals map and the one-active-rental-per-user check;
// the per-vehicle winner is decided by the registry's own locking.
type Engine struct {
	mu        sync.Mutex
	rentals   map[string]*Rental
	vehicles  *vehicle.Registry
	customers *customer.Repository
	maxRide   time.Duration
	now       func() time.Time
}

// NewEngine wires the engine to the registry and ledger. A non-positive
// maxRide selects DefaultMaxRide.
func NewEngine(vehicles *vehicle.Registry, customers *customer.Repository, maxRide time.Duration) *Engine {
	if maxRide <= 0 {
		maxRide = DefaultMaxRide
	}
	return &Engine{
		rentals:   make(map[string]*Rental),
		vehicles:  vehicles,
		customers: customers,
		maxRide:   maxRide,
		now:       time.Now,
	}
}

// WithClock replaces the engine's clock. Tests use this to simulate
// elapsed ride time; production code never calls it.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Start admits, reserves the vehicle, and creates the Active rental.
// Check order: negative balance, unknown vehicle, user already riding,
// vehicle already taken.
func (e *Engine) Start(userID, vehicleID string) (Snapshot, error) {
	u, err := e.customers.Get(userID)
	if err != nil {
		return Snapshot{}, err
	}
	if u.BalanceCents < 0 {
		return Snapshot{}, ErrPaymentRequired
	}
	if _, err := e.vehicles.Get(vehicleID); err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activeForUserLocked(userID) != nil {
		return Snapshot{}, ErrUserActive
	}
	if err := e.vehicles.MarkRented(vehicleID); err != nil {
		return Snapshot{}, err
	}

	r := &Rental{
		ID:        uuid.NewString(),
		UserID:    userID,
		VehicleID: vehicleID,
		StartedAt: e.now().UTC(),
	}
	e.rentals[r.ID] = r
	return e.snapshotLocked(r), nil
}

// Get returns the rental's snapshot, force-ending it first if it has been
// active longer than the ride cap.
func (e *Engine) Get(rentalID string) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.rentals[rentalID]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if r.active() && e.now().Sub(r.StartedAt) > e.maxRide {
		e.endLocked(r, nil, nil)
	}
	return e.snapshotLocked(r), nil
}

// End settles the rental: stamps end time and cost, frees the vehicle
// (applying the end position when supplied), and debits the owner.
// Ending an ended rental is a no-op returning the settled snapshot and
// the owner's current balance.
func (e *Engine) End(rentalID, callerID string, lat, lng *float64) (Snapshot, int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.rentals[rentalID]
	if !ok {
		return Snapshot{}, 0, ErrNotFound
	}
	if r.UserID != callerID {
		return Snapshot{}, 0, ErrNotOwner
	}
	if !r.active() {
		u, err := e.customers.Get(r.UserID)
		if err != nil {
			return Snapshot{}, 0, err
		}
		return e.snapshotLocked(r), u.BalanceCents, nil
	}

	balance := e.endLocked(r, lat, lng)
	return e.snapshotLocked(r), balance, nil
}

// ActiveForUser reports the caller's in-flight rental, if any.
func (e *Engine) ActiveForUser(userID string) (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if r := e.activeForUserLocked(userID); r != nil {
		return e.snapshotLocked(r), true
	}
	return Snapshot{}, false
}

// ActiveForVehicle reports the rental currently holding a vehicle; the
// fleet listing uses it to annotate who has each bike.
func (e *Engine) ActiveForVehicle(vehicleID string) (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range e.rentals {
		if r.VehicleID == vehicleID && r.active() {
			return e.snapshotLocked(r), true
		}
	}
	return Snapshot{}, false
}

// Reset drops every rental record.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rentals = make(map[string]*Rental)
}

func (e *Engine) activeForUserLocked(userID string) *Rental {
	for _, r := range e.rentals {
		if r.UserID == userID && r.active() {
			return r
		}
	}
	return nil
}

// endLocked performs the one-way Active -> Ended transition and returns
// the owner's post-debit balance. Callers hold e.mu and have verified the
// rental is active.
func (e *Engine) endLocked(r *Rental, lat, lng *float64) int64 {
	end := e.now().UTC()
	cost := pricing.CostCents(e.vehicleType(r.VehicleID), r.StartedAt, end)
	r.EndedAt = &end
	r.CostCents = &cost

	_ = e.vehicles.MarkAvailable(r.VehicleID, lat, lng)
	balance, _ := e.customers.Debit(r.UserID, cost)
	return balance
}

func (e *Engine) snapshotLocked(r *Rental) Snapshot {
	t := e.vehicleType(r.VehicleID)
	rate := pricing.RateFor(t)

	now := e.now().UTC()
	end := now
	if r.EndedAt != nil {
		end = *r.EndedAt
	}
	duration := int64(end.Sub(r.StartedAt) / time.Second)
	if duration < 0 {
		duration = 0
	}

	estimate := pricing.CostCents(t, r.StartedAt, now)
	if r.CostCents != nil {
		estimate = *r.CostCents
	}

	return Snapshot{
		ID:                       r.ID,
		UserID:                   r.UserID,
		BikeID:                   r.VehicleID,
		VehicleType:              t,
		StartedAt:                r.StartedAt,
		EndedAt:                  r.EndedAt,
		DurationSeconds:          duration,
		CostCents:                r.CostCents,
		CurrentCostEstimateCents: estimate,
		PerMinuteCents:           rate.PerMinuteCents,
		UnlockCents:              rate.UnlockCents,
	}
}

// vehicleType tolerates a missing vehicle the way the listing does:
// price it as a plain bike rather than fail a read.
func (e *Engine) vehicleType(vehicleID string) vehicle.Type {
	v, err := e.vehicles.Get(vehicleID)
	if err != nil {
		return vehicle.Bike
	}
	return v.Type
}
