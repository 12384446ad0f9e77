package vango

import (
	"reflect"
	"sync"
)

// signalBase provides type-erased subscriber management.
// It is embedded in Signal[T] and Memo[T] to share subscription logic.
type signalBase struct {
	id uint64

	subs  []Listener
	subMu sync.RWMutex
}

// subscribe adds a listener, deduplicating by listener ID.
func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// subscriberCount is used by tests and diagnostics.
func (s *signalBase) subscriberCount() int {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	return len(s.subs)
}

// track subscribes the current listener, if any, and records the source on
// listeners that track their sources.
func (s *signalBase) track() {
	listener := getCurrentListener()
	if listener == nil {
		return
	}
	s.subscribe(listener)
	if st, ok := listener.(sourceTracker); ok {
		st.addSource(s)
	}
}

// notifySubscribers notifies all subscribers that this signal changed.
// Inside a batch the notifications are queued until the batch completes.
func (s *signalBase) notifySubscribers() {
	s.subMu.RLock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	if getBatchDepth() > 0 {
		for _, sub := range subs {
			queuePendingUpdate(sub)
		}
		return
	}

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// Signal is a reactive value container.
// Reading a Signal during a tracked context (component render, memo
// computation, or effect execution) subscribes the current listener to
// changes of the value.
type Signal[T any] struct {
	base signalBase

	value T
	mu    sync.RWMutex

	// equal decides whether a write changed the value. nil uses defaultEquals.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
//
// Called during a component render, NewSignal is a hook: the first render
// creates the signal and later renders return the same instance, ignoring
// initial.
func NewSignal[T any](initial T) *Signal[T] {
	slot, owner, inRender := renderSlot(HookSignal)
	if slot != nil {
		return slotAs[*Signal[T]](slot, "Signal")
	}

	s := &Signal[T]{
		base:  signalBase{id: nextID()},
		value: initial,
	}
	if inRender {
		owner.SetHookSlot(s)
	}
	return s
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	s.base.track()
	return value
}

// SubscriberCount returns the number of listeners subscribed to the signal.
func (s *Signal[T]) SubscriberCount() int {
	return s.base.subscriberCount()
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// Update atomically reads and replaces the value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	oldValue := s.value
	newValue := fn(oldValue)
	changed := !s.equals(oldValue, newValue)
	if changed {
		s.value = newValue
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// WithEquals configures a custom equality function and returns the signal.
// Use it when reflect.DeepEqual is too expensive or has the wrong semantics.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// DefaultEquals reports whether a and b are equal the way signals compare
// values by default: == for basic kinds, reflect.DeepEqual for everything else.
func DefaultEquals[T any](a, b T) bool {
	return defaultEquals(a, b)
}

func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return sameAs(av, any(b))
	case int8:
		return sameAs(av, any(b))
	case int16:
		return sameAs(av, any(b))
	case int32:
		return sameAs(av, any(b))
	case int64:
		return sameAs(av, any(b))
	case uint:
		return sameAs(av, any(b))
	case uint8:
		return sameAs(av, any(b))
	case uint16:
		return sameAs(av, any(b))
	case uint32:
		return sameAs(av, any(b))
	case uint64:
		return sameAs(av, any(b))
	case float32:
		return sameAs(av, any(b))
	case float64:
		return sameAs(av, any(b))
	case string:
		return sameAs(av, any(b))
	case bool:
		return sameAs(av, any(b))
	default:
		return reflect.DeepEqual(a, b)
	}
}

func sameAs[V comparable](a V, b any) bool {
	bv, ok := b.(V)
	return ok && a == bv
}
