// Package vehicle holds the fleet registry: every rentable vehicle on
// campus, its position, and whether it is currently available.
package vehicle

import (
	"time"

	"github.com/goccy/go-json"
)

type Type int

const (
	Bike Type = iota
	SnowBike
	EBike
	Scooter
)

func (t Type) String() string {
	return [...]string{"bike", "snow-bike", "e-bike", "scooter"}[t]
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if v, ok := ParseType(s); ok {
		*t = v
	}
	return nil
}

// ParseType maps the wire name back to a Type. Unknown names report false;
// callers decide whether that is an error.
func ParseType(s string) (Type, bool) {
	switch s {
	case "bike":
		return Bike, true
	case "snow-bike":
		return SnowBike, true
	case "e-bike":
		return EBike, true
	case "scooter":
		return Scooter, true
	}
	return Bike, false
}

// Vehicle is one rentable unit. Position and availability are mutated by
// rental start/end; everything else is fixed at seed time.
type Vehicle struct {
	ID             string
	Type           Type
	Lat            float64
	Lng            float64
	Available      bool
	BatteryPercent int
	LastSeenAt     time.Time
}

// Seed returns the fixed demo fleet. The coordinates are the Rexburg
// campus cluster the map UI centers on.
func Seed() []Vehicle {
	now := time.Now().UTC()
	mk := func(id string, t Type, lat, lng float64) Vehicle {
		return Vehicle{
			ID:             id,
			Type:           t,
			Lat:            lat,
			Lng:            lng,
			Available:      true,
			BatteryPercent: 100,
			LastSeenAt:     now,
		}
	}
	return []Vehicle{
		mk("b1", Bike, 43.81488858304542, -111.79005227761711),
		mk("b2", EBike, 43.8201, -111.7859),
		mk("b3", Scooter, 43.825, -111.789),
		mk("b4", SnowBike, 43.8185, -111.783),
		mk("b5", Bike, 43.8212, -111.7871),
		mk("b6", EBike, 43.8239, -111.7842),
	}
}
