package registry

import "sync/atomic"

// Store holds the current Registry behind an atomic pointer for the
// content-authoring preview workflow. Rebuilds publish a whole new
// immutable Registry in one swap; readers never observe a partially
// updated index. A failed rebuild leaves the last good Registry in
// place.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore creates a store seeded with an initial registry. The
// initial value may be nil when no valid corpus has loaded yet.
func NewStore(initial *Registry) *Store {
	s := &Store{}
	if initial != nil {
		s.current.Store(initial)
	}

	return s
}

// Current returns the registry most recently published, or nil when
// none has been.
func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Swap publishes a freshly built registry, replacing the previous one
// for all subsequent readers.
func (s *Store) Swap(reg *Registry) {
	if reg == nil {
		return
	}
	s.current.Store(reg)
}
