package pricing

import (
	"testing"
	"time"

	"github.com/Colby-williams/hackathon-2025/vehicle"
)

func TestCostCents(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		vtype   vehicle.Type
		elapsed time.Duration
		want    int64
	}{
		{"zero duration bills one minute", vehicle.Bike, 0, 50},
		{"one second bills one minute", vehicle.Bike, time.Second, 50},
		{"exactly one minute", vehicle.Bike, time.Minute, 50},
		{"61 seconds rounds up to two minutes", vehicle.Bike, 61 * time.Second, 100},
		{"125 seconds on an e-bike is three minutes", vehicle.EBike, 125 * time.Second, 300},
		{"snow-bike uses the bike rate", vehicle.SnowBike, 10 * time.Minute, 500},
		{"scooter bills 100 per minute", vehicle.Scooter, 2 * time.Minute, 200},
		{"negative elapsed clamps to one minute", vehicle.EBike, -time.Minute, 100},
		{"unknown type falls back to the bike rate", vehicle.Type(42), 3 * time.Minute, 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CostCents(tc.vtype, start, start.Add(tc.elapsed))
			if got != tc.want {
				t.Errorf("CostCents(%v, %v) = %d, want %d", tc.vtype, tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestBilledMinutesAreCeiling(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for secs := 1; secs <= 300; secs++ {
		elapsed := time.Duration(secs) * time.Second
		want := int64((secs + 59) / 60)
		if want < 1 {
			want = 1
		}
		got := CostCents(vehicle.Bike, start, start.Add(elapsed)) / 50
		if got != want {
			t.Fatalf("billed minutes for %ds = %d, want %d", secs, got, want)
		}
	}
}

func TestRateForCoversEveryType(t *testing.T) {
	for _, vt := range []vehicle.Type{vehicle.Bike, vehicle.SnowBike, vehicle.EBike, vehicle.Scooter} {
		r := RateFor(vt)
		if r.PerMinuteCents <= 0 {
			t.Errorf("RateFor(%v) has no per-minute rate", vt)
		}
		if r.UnlockCents < 0 {
			t.Errorf("RateFor(%v) has a negative unlock fee", vt)
		}
	}
}
