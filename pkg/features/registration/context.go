package registration

import (
	"sync"

	"github.com/vango-dev/regctx/pkg/vango"
	"github.com/vango-dev/regctx/pkg/vdom"
)

// Context is a registration context: a Provider, a Register hook and a Values
// hook sharing one value type and configuration.
//
// A Context is safe for concurrent use and is usually declared at package
// level.
type Context[T any] struct {
	cfg   *config[T]
	scope *vango.Context[*Store[T]]

	globalOnce sync.Once
	global     *Store[T]
}

// ProviderFunc is the signature of Context.Provider.
type ProviderFunc func(children ...any) *vdom.VNode

// Create returns a new registration context.
func Create[T any](opts ...Option[T]) *Context[T] {
	return &Context[T]{
		cfg:   newConfig(opts),
		scope: vango.CreateContext[*Store[T]](nil),
	}
}

// Name returns the context label set with WithName.
func (c *Context[T]) Name() string {
	return c.cfg.name
}

// Hooks returns the provider, registration hook and read hook as a triple.
//
//	Provider, Register, Values := headings.Hooks()
func (c *Context[T]) Hooks() (ProviderFunc, func(T), func() []T) {
	return c.Provider, c.Register, c.Values
}

// NewScope creates an empty store with the context's configuration.
// Provider calls it once per mounted instance.
func (c *Context[T]) NewScope() *Store[T] {
	return newStore(c.cfg)
}

// Global returns the store used by components without an enclosing Provider.
// It is created on first use and lives for the rest of the process.
func (c *Context[T]) Global() *Store[T] {
	c.globalOnce.Do(func() {
		c.global = c.NewScope()
	})
	return c.global
}

// Use returns the store of the nearest enclosing Provider, or Global.
// It is not a hook and may be called conditionally.
func (c *Context[T]) Use() *Store[T] {
	if s, ok := c.scope.Lookup(); ok && s != nil {
		return s
	}
	return c.Global()
}

// Values returns the sorted values of the nearest store and subscribes the
// calling component, which re-renders after every change to the store.
// The returned slice is a fresh copy.
func (c *Context[T]) Values() []T {
	vango.TrackHook(vango.HookValues)
	return c.Use().Values()
}

// Provider returns a scope boundary around children. Each mounted Provider
// owns one store for its whole lifetime; registrations beneath it, including
// those below nested Providers of other contexts, go to that store. Nested
// Providers of the same context start independent stores.
func (c *Context[T]) Provider(children ...any) *vdom.VNode {
	return vdom.Comp(provider[T]{ctx: c, children: children})
}

type provider[T any] struct {
	ctx      *Context[T]
	children []any
}

// ComponentIdentity keeps the mounted Provider, and its store, across parent
// re-renders.
func (p provider[T]) ComponentIdentity() any {
	return p.ctx
}

func (p provider[T]) Render() *vdom.VNode {
	store := vango.NewRef[*Store[T]](nil)
	if !store.IsSet() {
		store.Set(p.ctx.NewScope())
	}
	p.ctx.scope.Provide(store.Current())
	return vdom.Fragment(p.children...)
}
