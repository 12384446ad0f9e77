package vango

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// HookType identifies the type of hook call for order validation.
type HookType uint8

const (
	HookSignal HookType = iota + 1
	HookMemo
	HookEffect
	HookRef
	HookContext
	HookRegister
	HookValues
)

// String returns a human-readable name for the hook type.
func (h HookType) String() string {
	switch h {
	case HookSignal:
		return "Signal"
	case HookMemo:
		return "Memo"
	case HookEffect:
		return "Effect"
	case HookRef:
		return "Ref"
	case HookContext:
		return "Context"
	case HookRegister:
		return "Register"
	case HookValues:
		return "Values"
	default:
		return "Unknown"
	}
}

// Owner represents a component scope that owns reactive primitives.
// When an Owner is disposed, all effects, cleanups and child owners it
// contains are disposed too.
//
// Owners form a hierarchy mirroring the component tree: each mounted
// component gets an Owner that is a child of its parent component's Owner.
type Owner struct {
	id uint64

	// parent is nil for a root Owner (typically the session).
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	effects   []*Effect
	effectsMu sync.Mutex

	// cleanups are registered via OnCleanup and run on Dispose.
	cleanups   []func()
	cleanupsMu sync.Mutex

	// pendingEffects are effects scheduled to run after render.
	pendingEffects   []*Effect
	pendingEffectsMu sync.Mutex

	// values stores context values for this scope.
	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool

	// Dev-mode hook order tracking (only used when DebugMode is true).
	hookOrder   []HookType
	hookIndex   int
	renderCount int

	// hookSlots give hooks a stable identity across renders.
	hookSlots   []any
	hookSlotIdx int
}

// NewOwner creates a new Owner registered as a child of parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}

	if parent != nil {
		parent.addChild(o)
	}

	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil for a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Owner) snapshotChildren() []*Owner {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	return append([]*Owner(nil), o.children...)
}

// registerEffect adds an effect to be disposed with this Owner.
func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}

	o.effectsMu.Lock()
	defer o.effectsMu.Unlock()
	o.effects = append(o.effects, e)
}

// OnCleanup registers fn to run when this Owner is disposed.
// If the Owner is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// scheduleEffect queues an effect for the next RunPendingEffects.
func (o *Owner) scheduleEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}

	o.pendingEffectsMu.Lock()
	defer o.pendingEffectsMu.Unlock()
	o.pendingEffects = append(o.pendingEffects, e)
}

// RunPendingEffects runs the effects scheduled on this Owner and, recursively,
// on its children. Parents run before children. It returns the number of
// effects that actually ran.
func (o *Owner) RunPendingEffects() int {
	if o.disposed.Load() {
		return 0
	}

	o.pendingEffectsMu.Lock()
	effects := o.pendingEffects
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()

	ran := 0
	for _, e := range effects {
		if e.pending.Load() && !e.disposed.Load() {
			e.run()
			ran++
		}
	}

	for _, child := range o.snapshotChildren() {
		ran += child.RunPendingEffects()
	}
	return ran
}

// HasPendingEffects returns true if this Owner or any child has pending effects.
func (o *Owner) HasPendingEffects() bool {
	if o.disposed.Load() {
		return false
	}

	o.pendingEffectsMu.Lock()
	hasPending := len(o.pendingEffects) > 0
	o.pendingEffectsMu.Unlock()

	if hasPending {
		return true
	}

	for _, child := range o.snapshotChildren() {
		if child.HasPendingEffects() {
			return true
		}
	}
	return false
}

// Dispose disposes this Owner and all its children, effects, and cleanups.
// Children are disposed in reverse order (last created first), then effects,
// then cleanups in reverse registration order. Dispose is idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.effectsMu.Lock()
	effects := o.effects
	o.effects = nil
	o.effectsMu.Unlock()

	for _, e := range effects {
		e.dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.pendingEffectsMu.Lock()
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()

	o.hookSlots = nil
}

// =============================================================================
// Render bracketing and hook order validation
// =============================================================================

// StartRender is called at the beginning of a component render.
// It resets the hook slot index and, in debug mode, the order validation index.
func (o *Owner) StartRender() {
	beginRender()
	o.hookSlotIdx = 0

	if DebugMode {
		o.hookIndex = 0
	}
}

// EndRender is called at the end of a component render.
// In debug mode, it validates that all expected hooks were called.
func (o *Owner) EndRender() {
	endRender()

	if !DebugMode {
		return
	}
	if o.renderCount == 0 {
		o.renderCount = 1
	} else if o.hookIndex < len(o.hookOrder) {
		panic(fmt.Sprintf("[VANGO E002] Hook order changed: expected %d hooks, got %d",
			len(o.hookOrder), o.hookIndex))
	}
}

// TrackHook records a hook call during render for order validation.
// Violations panic in debug mode.
func (o *Owner) TrackHook(ht HookType) {
	if !DebugMode {
		return
	}

	if o.renderCount == 0 {
		o.hookOrder = append(o.hookOrder, ht)
	} else {
		if o.hookIndex >= len(o.hookOrder) {
			panic(fmt.Sprintf("[VANGO E002] Hook order changed: extra %s hook at index %d",
				ht, o.hookIndex))
		}
		if expected := o.hookOrder[o.hookIndex]; expected != ht {
			panic(fmt.Sprintf("[VANGO E002] Hook order changed at index %d: expected %s, got %s",
				o.hookIndex, expected, ht))
		}
	}
	o.hookIndex++
}

// TrackHook records a hook call on the current owner, if any.
func TrackHook(ht HookType) {
	if owner := getCurrentOwner(); owner != nil && isInRender() {
		owner.TrackHook(ht)
	}
}

// UseHookSlot returns the stored value for the current hook slot, or nil on
// the first render, in which case the caller creates the value and stores it
// with SetHookSlot.
//
//	func SomeHook[T any]() *T {
//	    slot := owner.UseHookSlot()
//	    if slot != nil {
//	        return slot.(*T)
//	    }
//	    instance := &T{...}
//	    owner.SetHookSlot(instance)
//	    return instance
//	}
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++

	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores a value in the slot just handed out by UseHookSlot.
func (o *Owner) SetHookSlot(value any) {
	o.hookSlots = append(o.hookSlots, value)
}

// renderSlot resolves the hook slot for the running render. It returns
// (stored, owner, true) when a render is in progress on an owner; stored is
// nil on the first render.
func renderSlot(ht HookType) (any, *Owner, bool) {
	owner := getCurrentOwner()
	if owner == nil || !isInRender() {
		return nil, nil, false
	}
	owner.TrackHook(ht)
	return owner.UseHookSlot(), owner, true
}

// slotAs converts a stored hook slot to its concrete type, panicking with a
// descriptive message when hooks were reordered between renders.
func slotAs[S any](slot any, hook string) S {
	v, ok := slot.(S)
	if !ok {
		panic("vango: hook slot type mismatch for " + hook)
	}
	return v
}
