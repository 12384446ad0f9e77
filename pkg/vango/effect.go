package vango

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive side effect that re-runs when its dependencies change.
// Dependencies are the signals and memos read during its last run.
//
// An effect may return a Cleanup, called before the next run and when the
// effect is disposed.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup

	sources   []*signalBase
	sourcesMu sync.Mutex

	// owner schedules re-runs and disposes the effect.
	owner *Owner

	// pending indicates the effect is scheduled for a run.
	pending atomic.Bool

	disposed atomic.Bool
}

// MarkDirty schedules the effect for re-run on its owner.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}

	if e.pending.CompareAndSwap(false, true) {
		if e.owner != nil {
			e.owner.scheduleEffect(e)
		} else {
			// Unowned effects have no commit phase to wait for.
			e.run()
		}
	}
}

// ID returns the unique identifier for this effect.
func (e *Effect) ID() uint64 {
	return e.id
}

// IsDisposed returns true once the effect has been disposed.
func (e *Effect) IsDisposed() bool {
	return e.disposed.Load()
}

func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	e.pending.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	oldListener := setCurrentListener(e)
	oldOwner := setCurrentOwner(e.owner)

	e.cleanup = e.fn()

	setCurrentOwner(oldOwner)
	setCurrentListener(oldListener)
}

func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// dispose runs the last cleanup and unsubscribes from all sources.
func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

// CreateEffect creates an effect owned by the current owner.
//
// Called during a component render, CreateEffect is a hook: the first render
// schedules the effect for the commit phase (Owner.RunPendingEffects) instead
// of running it, and later renders return the same effect with fn replaced.
// Outside a render the effect runs immediately.
//
// Example:
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return func() { fmt.Println("Cleanup") }
//	})
func CreateEffect(fn func() Cleanup) *Effect {
	slot, owner, inRender := renderSlot(HookEffect)
	if slot != nil {
		e := slotAs[*Effect](slot, "Effect")
		e.fn = fn
		return e
	}
	if !inRender {
		owner = getCurrentOwner()
	}

	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: owner,
	}

	if owner != nil {
		owner.registerEffect(e)
	}

	if inRender {
		owner.SetHookSlot(e)
		e.pending.Store(true)
		owner.scheduleEffect(e)
		return e
	}

	e.run()
	return e
}

// OnMount runs fn once after the first commit of the calling component.
func OnMount(fn func()) {
	CreateEffect(func() Cleanup {
		Untracked(fn)
		return nil
	})
}

// unmountHook keeps the latest unmount callback of a component.
type unmountHook struct {
	fn func()
}

// OnUnmount registers fn to run when the current owner is disposed.
//
// During a render it registers only once per component; later renders replace
// the callback, so the one from the latest render runs.
func OnUnmount(fn func()) {
	slot, owner, inRender := renderSlot(HookEffect)
	if slot != nil {
		slotAs[*unmountHook](slot, "OnUnmount").fn = fn
		return
	}
	if !inRender {
		if owner = getCurrentOwner(); owner != nil {
			owner.OnCleanup(fn)
		}
		return
	}

	h := &unmountHook{fn: fn}
	owner.SetHookSlot(h)
	owner.OnCleanup(func() { h.fn() })
}
