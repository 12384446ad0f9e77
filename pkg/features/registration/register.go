package registration

import (
	"sync"

	"github.com/vango-dev/regctx/pkg/vango"
)

type registrationState uint8

const (
	unregistered registrationState = iota
	registered
	removed
)

// Registration is one entry in a store. Components get one implicitly through
// Context.Register; code outside a render uses Context.Acquire.
//
// Removed is terminal: after Release, Update does nothing.
type Registration[T any] struct {
	id ID

	mu    sync.Mutex
	state registrationState
	store *Store[T]
}

// ID returns the registrant id.
func (r *Registration[T]) ID() ID {
	return r.id
}

// Active reports whether the entry is currently in a store.
func (r *Registration[T]) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == registered
}

// write stores value in store unless the registration was released.
func (r *Registration[T]) write(store *Store[T], value T) {
	r.mu.Lock()
	if r.state == removed {
		r.mu.Unlock()
		return
	}
	r.store = store
	r.state = registered
	r.mu.Unlock()

	store.Set(r.id, value)
}

// Update overwrites the value in place, keeping the id.
func (r *Registration[T]) Update(value T) {
	r.mu.Lock()
	store := r.store
	r.mu.Unlock()

	if store != nil {
		r.write(store, value)
	}
}

// Release removes the entry. Only the first call has an effect, and releasing
// a registration that never wrote is a no-op.
func (r *Registration[T]) Release() {
	r.mu.Lock()
	prev := r.state
	store := r.store
	r.state = removed
	r.store = nil
	r.mu.Unlock()

	if prev == registered && store != nil {
		store.Remove(r.id)
	}
}

func (c *Context[T]) newRegistration() *Registration[T] {
	return &Registration[T]{id: c.cfg.newID()}
}

// Acquire registers value in the store resolved by Use and returns the handle
// that updates and releases it. It is for code that is not a component
// render, such as effects or setup code; components use Register.
func (c *Context[T]) Acquire(value T) *Registration[T] {
	reg := c.newRegistration()
	reg.write(c.Use(), value)
	return reg
}

// Register keeps value in the nearest store for as long as the calling
// component is mounted. It is a hook and must be called unconditionally on
// every render.
//
// The first render assigns the component a registrant id that never changes.
// The value is written in the commit phase that follows the render, and later
// renders overwrite it in place only when it differs under the context's
// equality policy. Unmounting removes the entry.
//
// Called outside a component render, Register logs a warning and does
// nothing.
func (c *Context[T]) Register(value T) {
	if !vango.InRender() {
		c.cfg.logger.Warn("registration: Register called outside component render",
			"context", c.cfg.name)
		return
	}
	vango.TrackHook(vango.HookRegister)

	store := c.Use()

	ref := vango.NewRef[*Registration[T]](nil)
	current := vango.NewSignal(value)

	if !ref.IsSet() {
		ref.Set(c.newRegistration())
		if c.cfg.equals != nil {
			current.WithEquals(c.cfg.equals)
		}
	}
	reg := ref.Current()

	vango.OnUnmount(reg.Release)

	current.Set(value)

	// The store is fixed for the component's lifetime: its owner chain never
	// changes and each Provider keeps one store.
	vango.CreateEffect(func() vango.Cleanup {
		reg.write(store, current.Get())
		return nil
	})
}
