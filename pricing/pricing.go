// Package pricing is the static fare table and the duration-based cost
// rule. All amounts are integer cents.
package pricing

import (
	"time"

	"github.com/Colby-williams/hackathon-2025/vehicle"
)

type Rate struct {
	UnlockCents    int64
	PerMinuteCents int64
}

// Fixed per-type rates: pedal and snow bikes bill 50¢/min, powered
// vehicles 100¢/min. No unlock fee on campus.
var rates = map[vehicle.Type]Rate{
	vehicle.Bike:     {UnlockCents: 0, PerMinuteCents: 50},
	vehicle.SnowBike: {UnlockCents: 0, PerMinuteCents: 50},
	vehicle.EBike:    {UnlockCents: 0, PerMinuteCents: 100},
	vehicle.Scooter:  {UnlockCents: 0, PerMinuteCents: 100},
}

// defaultRate backstops an unknown type the same way the pricing table
// treats a plain bike.
var defaultRate = Rate{UnlockCents: 0, PerMinuteCents: 50}

func RateFor(t vehicle.Type) Rate {
	if r, ok := rates[t]; ok {
		return r
	}
	return defaultRate
}

// CostCents bills whole minutes: elapsed seconds are clamped to >= 0,
// rounded up to the next minute, and never below one billed minute.
func CostCents(t vehicle.Type, start, end time.Time) int64 {
	r := RateFor(t)
	elapsed := int64(end.Sub(start) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := (elapsed + 59) / 60
	if minutes < 1 {
		minutes = 1
	}
	return r.UnlockCents + minutes*r.PerMinuteCents
}
