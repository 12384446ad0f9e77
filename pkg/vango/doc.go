// Package vango provides the reactive core used by the component runtime.
//
// Dependencies are tracked automatically at runtime: reading a signal while a
// component renders subscribes that component to the signal, and writing the
// signal marks every subscriber dirty.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	count := NewSignal(0)
//	value := count.Get()  // Read (subscribes current listener)
//	count.Set(5)          // Write (notifies subscribers)
//
// MapSignal[K, V] is a copy-on-write map signal:
//
//	entries := NewMapSignal[string, int](nil)
//	entries.SetKey("a", 1)
//	entries.RemoveKey("a")
//
// Memo[T] is a cached derived computation:
//
//	doubled := NewMemo(func() int { return count.Get() * 2 })
//
// Effect runs side effects when dependencies change. Effects created while a
// component renders are deferred to the commit phase and run from
// Owner.RunPendingEffects:
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return func() { /* cleanup */ }
//	})
//
// # Hooks
//
// Signals, memos, effects and refs created during a render are bound to a hook
// slot on the rendering Owner, so the same instance is returned on every
// subsequent render of that component. Hooks must be called unconditionally
// and in the same order on every render; DebugMode validates this.
//
// # Batching
//
// Multiple signal updates can be batched to trigger a single notification:
//
//	Batch(func() {
//	    a.Set(1)
//	    b.Set(2)
//	})
//
// # Thread Safety
//
// All reactive primitives are safe for concurrent access. The tracking context
// is per-goroutine, so spawning goroutines requires explicit context
// propagation via WithOwner.
package vango
