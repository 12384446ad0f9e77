package vango

import "sync/atomic"

// globalIDCounter is the source of ids for owners, signals, memos and effects.
var globalIDCounter atomic.Uint64

// nextID returns the next id for a reactive primitive.
// Ids are monotonically increasing and never reused within a process.
func nextID() uint64 {
	return globalIDCounter.Add(1)
}

// NextID returns a fresh process-unique id. Runtimes use it to identify
// listeners that live outside this package, such as component instances.
func NextID() uint64 {
	return nextID()
}
