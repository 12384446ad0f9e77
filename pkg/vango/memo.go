package vango

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached computation that tracks its dependencies.
// When any dependency changes, the memo is invalidated and recomputes on the
// next read. If several dependencies change before a read, it recomputes once.
//
// Memos can be read from other memos, effects and renders, behaving like
// signals themselves.
type Memo[T any] struct {
	base signalBase

	compute func() T

	value   T
	valueMu sync.RWMutex

	// valid is false until the first computation and after every invalidation.
	valid atomic.Bool

	sources   []*signalBase
	sourcesMu sync.Mutex

	// computing guards against circular dependencies.
	computing atomic.Bool
}

// NewMemo creates a memo. The computation runs lazily on the first Get.
//
// Called during a component render, NewMemo is a hook: later renders return
// the same memo with its compute function replaced, so closures stay current.
func NewMemo[T any](compute func() T) *Memo[T] {
	slot, owner, inRender := renderSlot(HookMemo)
	if slot != nil {
		memo := slotAs[*Memo[T]](slot, "Memo")
		memo.compute = compute
		memo.valid.Store(false)
		return memo
	}

	memo := &Memo[T]{
		base:    signalBase{id: nextID()},
		compute: compute,
	}
	if inRender {
		owner.SetHookSlot(memo)
	}
	return memo
}

// Get returns the memo's value, recomputing if necessary, and subscribes the
// current listener.
func (m *Memo[T]) Get() T {
	m.base.track()
	return m.Peek()
}

// Peek returns the memo's value without subscribing.
// It still recomputes an invalid value.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	defer m.valueMu.RUnlock()
	return m.value
}

// MarkDirty invalidates the memo and propagates to its subscribers.
func (m *Memo[T]) MarkDirty() {
	if m.valid.CompareAndSwap(true, false) {
		m.base.notifySubscribers()
	}
}

// ID returns the unique identifier for this memo.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

// SubscriberCount returns the number of listeners subscribed to the memo.
func (m *Memo[T]) SubscriberCount() int {
	return m.base.subscriberCount()
}

func (m *Memo[T]) addSource(source *signalBase) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		return
	}
	defer m.computing.Store(false)

	m.sourcesMu.Lock()
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	old := setCurrentListener(m)
	newValue := m.compute()
	setCurrentListener(old)

	m.valueMu.Lock()
	m.value = newValue
	m.valueMu.Unlock()

	m.valid.Store(true)
}

var _ sourceTracker = (*Memo[int])(nil)
