// Package rental is the billing core: the Active -> Ended state machine,
// the per-minute cost settlement against the wallet, and the projections
// the API serves.
package rental

import (
	"time"

	"github.com/Colby-williams/hackathon-2025/vehicle"
)

// Rental is one lease of one vehicle by one user. EndedAt and CostCents
// are nil while the rental is active and are set exactly once; ending an
// already-ended rental returns the prior result unchanged.
type Rental struct {
	ID        string
	UserID    string
	VehicleID string
	StartedAt time.Time
	EndedAt   *time.Time
	CostCents *int64
}

func (r *Rental) active() bool {
	return r.EndedAt == nil
}

// Snapshot is the read model handed to callers. While the rental is
// active, CostCents is null and CurrentCostEstimateCents prices the ride
// as if it ended now; once settled the estimate equals the final cost.
type Snapshot struct {
	ID                       string       `json:"id"`
	UserID                   string       `json:"user_id"`
	BikeID                   string       `json:"bike_id"`
	VehicleType              vehicle.Type `json:"vehicle_type"`
	StartedAt                time.Time    `json:"started_at"`
	EndedAt                  *time.Time   `json:"ended_at"`
	DurationSeconds          int64        `json:"duration_seconds"`
	CostCents                *int64       `json:"cost_cents"`
	CurrentCostEstimateCents int64        `json:"current_cost_estimate_cents"`
	PerMinuteCents           int64        `json:"per_minute_cents"`
	UnlockCents              int64        `json:"unlock_cents"`
}
