package vango

import "sync"

// Ref holds a mutable value that survives re-renders without causing them.
//
// Ref[T] is safe for concurrent access.
type Ref[T any] struct {
	value T
	isSet bool
	mu    sync.RWMutex
}

// NewRef creates a Ref with the given initial value.
//
// This is a hook: during a render the same Ref is returned on every render of
// the component and initial is ignored after the first.
func NewRef[T any](initial T) *Ref[T] {
	slot, owner, inRender := renderSlot(HookRef)
	if slot != nil {
		return slotAs[*Ref[T]](slot, "Ref")
	}

	r := &Ref[T]{value: initial}
	if inRender {
		owner.SetHookSlot(r)
	}
	return r
}

// Current returns the current value of the ref.
func (r *Ref[T]) Current() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set sets the ref's value.
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
	r.isSet = true
}

// IsSet returns true once Set has been called.
func (r *Ref[T]) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isSet
}

// Clear resets the ref to its zero value.
func (r *Ref[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.value = zero
	r.isSet = false
}
