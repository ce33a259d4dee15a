package vehicle

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotFound     = errors.New("vehicle not found")
	ErrNotAvailable = errors.New("vehicle not available")
)

// Registry is the in-memory fleet store. The registry mutex guards the
// map itself; each vehicle additionally has its own lock so that an
// availability transition (check + flip) is serialized per vehicle and two
// concurrent rental starts cannot both win the same vehicle.
type Registry struct {
	mu       sync.RWMutex
	vehicles map[string]*Vehicle
	locks    map[string]*sync.Mutex
	seed     []Vehicle
}

func NewRegistry(seed []Vehicle) *Registry {
	r := &Registry{
		vehicles: make(map[string]*Vehicle, len(seed)),
		locks:    make(map[string]*sync.Mutex, len(seed)),
		seed:     seed,
	}
	for _, v := range seed {
		c := v
		r.vehicles[v.ID] = &c
		r.locks[v.ID] = &sync.Mutex{}
	}
	return r
}

// List returns value snapshots of the whole fleet, ordered by id.
func (r *Registry) List() []Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) Get(id string) (Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[id]
	if !ok {
		return Vehicle{}, ErrNotFound
	}
	return *v, nil
}

// MarkRented flips an available vehicle to unavailable. The check and the
// flip happen under the vehicle's own lock, so exactly one of any number
// of concurrent callers succeeds.
func (r *Registry) MarkRented(id string) error {
	lock, v, err := r.lookup(id)
	if err != nil {
		return err
	}

	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !v.Available {
		return ErrNotAvailable
	}
	v.Available = false
	v.LastSeenAt = time.Now().UTC()
	return nil
}

// MarkAvailable frees a vehicle after a rental. The end position is
// applied only when both coordinates are present; callers pass nil for
// anything that failed to parse (parse-or-ignore at the boundary).
func (r *Registry) MarkAvailable(id string, lat, lng *float64) error {
	lock, v, err := r.lookup(id)
	if err != nil {
		return err
	}

	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if lat != nil && lng != nil {
		v.Lat = *lat
		v.Lng = *lng
	}
	v.Available = true
	v.LastSeenAt = time.Now().UTC()
	return nil
}

// Recharge resets the battery gauge. Demo convenience for the map UI.
func (r *Registry) Recharge(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[id]
	if !ok {
		return ErrNotFound
	}
	v.BatteryPercent = 100
	v.LastSeenAt = time.Now().UTC()
	return nil
}

// Reset restores the seeded fleet: every vehicle available, back at its
// seed position, battery full.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, s := range r.seed {
		c := s
		c.Available = true
		c.BatteryPercent = 100
		c.LastSeenAt = now
		r.vehicles[s.ID] = &c
	}
}

func (r *Registry) lookup(id string) (*sync.Mutex, *Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	return r.locks[id], v, nil
}
