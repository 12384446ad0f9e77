package server

import (
	"fmt"
	"sync/atomic"

	"github.com/vango-dev/regctx/pkg/vango"
	"github.com/vango-dev/regctx/pkg/vdom"
)

// ComponentInstance represents a mounted component with its state.
// It holds the component's reactive ownership and last rendered tree.
type ComponentInstance struct {
	// Sources holds the signals read by the last render. They are released
	// before every render and on disposal.
	vango.Sources

	// InstanceID is the unique instance identifier.
	InstanceID string

	// Component is the component being rendered. Reconciliation replaces it
	// with the latest value from the parent's render, keeping the instance.
	Component vdom.Component

	// Key is the reconciliation key of the node that mounted the instance.
	Key string

	// Owner manages hook state, effects and context for this component.
	Owner *vango.Owner

	// Parent is the parent component instance (nil for root).
	Parent *ComponentInstance

	// Children are child component instances in document order of the
	// component nodes in the last rendered tree.
	Children []*ComponentInstance

	id       uint64
	dirty    atomic.Bool
	disposed atomic.Bool

	session  *Session
	lastTree *vdom.VNode
}

var _ vango.Listener = (*ComponentInstance)(nil)

var componentIDCounter atomic.Uint64

func generateComponentID() string {
	return fmt.Sprintf("c%d", componentIDCounter.Add(1))
}

func newComponentInstance(component vdom.Component, key string, parent *ComponentInstance, session *Session) *ComponentInstance {
	var parentOwner *vango.Owner
	if parent != nil {
		parentOwner = parent.Owner
	} else if session != nil {
		parentOwner = session.owner
	}

	return &ComponentInstance{
		InstanceID: generateComponentID(),
		Component:  component,
		Key:        key,
		Owner:      vango.NewOwner(parentOwner),
		Parent:     parent,
		id:         vango.NextID(),
		session:    session,
	}
}

// Render renders the component with its Owner as the current owner and the
// instance as the tracking listener, so hooks bind to this component and
// every signal read subscribes it.
func (c *ComponentInstance) Render() *vdom.VNode {
	if c.Component == nil || c.disposed.Load() {
		return nil
	}

	c.ReleaseSources(c)

	var tree *vdom.VNode
	vango.WithOwner(c.Owner, func() {
		c.Owner.StartRender()
		defer c.Owner.EndRender()

		vango.WithListener(c, func() {
			tree = c.Component.Render()
		})
	})

	c.lastTree = tree
	return tree
}

// MarkDirty schedules a re-render on the owning session.
func (c *ComponentInstance) MarkDirty() {
	if c.disposed.Load() {
		return
	}
	if c.dirty.CompareAndSwap(false, true) && c.session != nil {
		c.session.scheduleRender(c)
	}
}

// ID returns the listener identifier of the instance.
func (c *ComponentInstance) ID() uint64 {
	return c.id
}

// IsDirty returns whether the component needs re-rendering.
func (c *ComponentInstance) IsDirty() bool {
	return c.dirty.Load()
}

// ClearDirty clears the dirty flag.
func (c *ComponentInstance) ClearDirty() {
	c.dirty.Store(false)
}

// IsDisposed reports whether the instance has been unmounted.
func (c *ComponentInstance) IsDisposed() bool {
	return c.disposed.Load()
}

// LastTree returns the last rendered VNode tree (with component nodes).
func (c *ComponentInstance) LastTree() *vdom.VNode {
	return c.lastTree
}

// Depth returns the number of ancestors of the instance.
func (c *ComponentInstance) Depth() int {
	d := 0
	for p := c.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Dispose unmounts the instance and all its children, leaves first.
// Owner cleanups (unmount hooks) run as part of disposal.
func (c *ComponentInstance) Dispose() {
	if c.disposed.Swap(true) {
		return
	}

	for i := len(c.Children) - 1; i >= 0; i-- {
		c.Children[i].Dispose()
	}
	c.Children = nil

	if c.Owner != nil {
		c.Owner.Dispose()
	}
	c.ReleaseSources(c)

	if c.session != nil {
		c.session.instanceUnmounted(c)
	}

	c.lastTree = nil
}
