package vango

// DebugMode enables dev-time validation such as hook order checking.
// Set it at startup; it must not change while components are mounted.
var DebugMode bool

// Batch groups signal updates into a single notification phase.
// Listeners affected by updates inside fn are collected, deduplicated and
// notified once when the outermost batch completes.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	})
//	// Component re-renders once with both changes
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()

	fn()
}

// Tx is an alias for Batch.
func Tx(fn func()) {
	Batch(fn)
}

// InBatch reports whether a batch is open on the calling goroutine.
func InBatch() bool {
	return getBatchDepth() > 0
}

// processPendingUpdates deduplicates and notifies all pending listeners.
// Listeners notified here may queue further updates (memos propagating to
// their subscribers); those are delivered before returning.
func processPendingUpdates() {
	for {
		updates := drainPendingUpdates()
		if len(updates) == 0 {
			return
		}

		seen := make(map[uint64]bool, len(updates))
		for _, listener := range updates {
			id := listener.ID()
			if seen[id] {
				continue
			}
			seen[id] = true
			listener.MarkDirty()
		}
	}
}

// Untracked runs fn without tracking signal reads as dependencies.
//
// For single reads prefer Signal.Peek.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}
