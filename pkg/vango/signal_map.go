package vango

import "sync"

// MapSignal is a reactive map. Reads subscribe the current listener to the
// whole map; writes notify subscribers only when an entry actually changed.
type MapSignal[K comparable, V any] struct {
	base signalBase

	m  map[K]V
	mu sync.RWMutex

	// equal decides whether SetKey changed an existing entry.
	equal func(V, V) bool
}

// NewMapSignal creates a MapSignal holding a copy of initial.
// Like NewSignal, it is a hook when called during a component render.
func NewMapSignal[K comparable, V any](initial map[K]V) *MapSignal[K, V] {
	slot, owner, inRender := renderSlot(HookSignal)
	if slot != nil {
		return slotAs[*MapSignal[K, V]](slot, "MapSignal")
	}

	m := make(map[K]V, len(initial))
	for k, v := range initial {
		m[k] = v
	}
	s := &MapSignal[K, V]{
		base: signalBase{id: nextID()},
		m:    m,
	}
	if inRender {
		owner.SetHookSlot(s)
	}
	return s
}

// WithEquals configures the entry equality function and returns the signal.
func (s *MapSignal[K, V]) WithEquals(fn func(V, V) bool) *MapSignal[K, V] {
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
	return s
}

// ID returns the unique identifier for this signal.
func (s *MapSignal[K, V]) ID() uint64 {
	return s.base.id
}

// Get returns a copy of the map and subscribes the current listener.
func (s *MapSignal[K, V]) Get() map[K]V {
	s.base.track()
	return s.Peek()
}

// Peek returns a copy of the map without subscribing.
func (s *MapSignal[K, V]) Peek() map[K]V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[K]V, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

// GetKey returns the value for key.
func (s *MapSignal[K, V]) GetKey(key K) (V, bool) {
	s.base.track()

	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// HasKey returns true if key is present.
func (s *MapSignal[K, V]) HasKey(key K) bool {
	_, ok := s.GetKey(key)
	return ok
}

// Len returns the number of entries.
func (s *MapSignal[K, V]) Len() int {
	s.base.track()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Keys returns all keys in unspecified order.
func (s *MapSignal[K, V]) Keys() []K {
	s.base.track()

	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]K, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	return keys
}

// SetKey stores value under key. Subscribers are notified when the key is new
// or the value differs from the stored one; SetKey reports which happened.
func (s *MapSignal[K, V]) SetKey(key K, value V) bool {
	s.mu.Lock()
	old, exists := s.m[key]
	changed := !exists || !s.equals(old, value)
	if changed {
		s.m[key] = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
	return changed
}

// RemoveKey deletes key. Removing an absent key is a no-op and notifies nobody.
// It reports whether an entry was removed.
func (s *MapSignal[K, V]) RemoveKey(key K) bool {
	s.mu.Lock()
	_, exists := s.m[key]
	if exists {
		delete(s.m, key)
	}
	s.mu.Unlock()

	if exists {
		s.base.notifySubscribers()
	}
	return exists
}

// UpdateKey replaces the value for key using fn. Does nothing if key is absent.
func (s *MapSignal[K, V]) UpdateKey(key K, fn func(V) V) {
	s.mu.Lock()
	old, exists := s.m[key]
	changed := false
	if exists {
		next := fn(old)
		if changed = !s.equals(old, next); changed {
			s.m[key] = next
		}
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// Clear removes every entry.
func (s *MapSignal[K, V]) Clear() {
	s.mu.Lock()
	had := len(s.m) > 0
	s.m = make(map[K]V)
	s.mu.Unlock()

	if had {
		s.base.notifySubscribers()
	}
}

func (s *MapSignal[K, V]) equals(a, b V) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}
