package vango

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine.
type trackingContext struct {
	// currentOwner owns signals, memos and effects created right now.
	currentOwner *Owner

	// currentListener subscribes to every signal read while it is set.
	// nil means reads are untracked.
	currentListener Listener

	// batchDepth tracks nested Batch calls.
	batchDepth int

	// pendingUpdates accumulates listeners to notify when the outermost batch
	// completes.
	pendingUpdates []Listener

	// renderDepth is non-zero while a component render is in progress.
	renderDepth int
}

// trackingContexts stores per-goroutine tracking contexts keyed by goroutine id.
var trackingContexts sync.Map

// getGoroutineID parses the current goroutine id from the runtime stack header
// ("goroutine <id> [...]").
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating it on first use.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener sets the listener for dependency tracking and returns the
// previous one so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

func getCurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner sets the owner for signal/effect creation and returns the
// previous one so it can be restored.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

func getBatchDepth() int {
	return getTrackingContext().batchDepth
}

func incrementBatchDepth() {
	getTrackingContext().batchDepth++
}

// decrementBatchDepth reports whether the outermost batch just completed.
func decrementBatchDepth() bool {
	ctx := getTrackingContext()
	ctx.batchDepth--
	return ctx.batchDepth == 0
}

func queuePendingUpdate(l Listener) {
	ctx := getTrackingContext()
	ctx.pendingUpdates = append(ctx.pendingUpdates, l)
}

func drainPendingUpdates() []Listener {
	ctx := getTrackingContext()
	updates := ctx.pendingUpdates
	ctx.pendingUpdates = nil
	return updates
}

func beginRender() {
	getTrackingContext().renderDepth++
}

func endRender() {
	ctx := getTrackingContext()
	if ctx.renderDepth > 0 {
		ctx.renderDepth--
	}
}

// isInRender reports whether a component render is in progress on this goroutine.
func isInRender() bool {
	return getTrackingContext().renderDepth > 0
}

// InRender reports whether a component render is in progress on the calling
// goroutine. Hooks that must not run outside a render check it.
func InRender() bool {
	return isInRender() && getCurrentOwner() != nil
}

// CurrentOwner returns the owner of the running render, effect or WithOwner
// block, or nil.
func CurrentOwner() *Owner {
	return getCurrentOwner()
}

// WithOwner runs fn with owner as the current owner. Passing nil detaches fn
// from any component, so primitives created inside are not bound to hook slots.
//
// Example:
//
//	go func() {
//	    WithOwner(parentOwner, func() {
//	        // Signals created here belong to parentOwner
//	        signal := NewSignal(0)
//	    })
//	}()
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// WithListener runs fn with l as the tracking listener.
// Runtimes use it to subscribe a component to everything its render reads.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// ReleaseGoroutine drops the tracking context of the calling goroutine.
// Long-lived worker goroutines should call it before exiting.
func ReleaseGoroutine() {
	trackingContexts.Delete(getGoroutineID())
}
