package vango

import "testing"

type recordedListener struct {
	Sources
	id    uint64
	dirty int
}

func (l *recordedListener) MarkDirty() { l.dirty++ }
func (l *recordedListener) ID() uint64 { return l.id }

var _ sourceTracker = (*recordedListener)(nil)

func TestSources_ReleaseUnsubscribes(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(2)
	m := NewMemo(func() int { return a.Get() * 10 })
	l := &recordedListener{id: nextID()}

	WithListener(l, func() {
		_ = a.Get()
		_ = a.Get()
		_ = b.Get()
		_ = m.Get()
	})

	if n := l.SourceCount(); n != 3 {
		t.Fatalf("SourceCount() = %d, want 3", n)
	}
	if a.SubscriberCount() != 2 || b.SubscriberCount() != 1 || m.SubscriberCount() != 1 {
		t.Fatalf("subscribers a=%d b=%d m=%d", a.SubscriberCount(), b.SubscriberCount(), m.SubscriberCount())
	}

	l.ReleaseSources(l)

	if n := l.SourceCount(); n != 0 {
		t.Errorf("SourceCount() after release = %d", n)
	}
	// a keeps the memo as a subscriber.
	if a.SubscriberCount() != 1 || b.SubscriberCount() != 0 || m.SubscriberCount() != 0 {
		t.Errorf("subscribers after release a=%d b=%d m=%d", a.SubscriberCount(), b.SubscriberCount(), m.SubscriberCount())
	}

	b.Set(3)
	if l.dirty != 0 {
		t.Errorf("released listener notified %d times", l.dirty)
	}
}
