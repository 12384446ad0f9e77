package vango

import "testing"

func TestBatchDeduplicates(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	l := newTestListener()
	WithListener(l, func() {
		_ = a.Get()
		_ = b.Get()
	})

	Batch(func() {
		a.Set(1)
		b.Set(1)
		if l.dirty != 0 {
			t.Error("notification delivered inside batch")
		}
		if !InBatch() {
			t.Error("InBatch should be true inside Batch")
		}
	})

	if l.dirty != 1 {
		t.Errorf("dirty = %d, want 1", l.dirty)
	}
	if InBatch() {
		t.Error("InBatch should be false after Batch")
	}
}

func TestNestedBatch(t *testing.T) {
	s := NewSignal(0)
	l := newTestListener()
	WithListener(l, func() { _ = s.Get() })

	Tx(func() {
		Batch(func() { s.Set(1) })
		if l.dirty != 0 {
			t.Error("inner batch flushed early")
		}
		s.Set(2)
	})

	if l.dirty != 1 {
		t.Errorf("dirty = %d, want 1", l.dirty)
	}
}

func TestUntracked(t *testing.T) {
	s := NewSignal(0)
	l := newTestListener()
	WithListener(l, func() {
		Untracked(func() { _ = s.Get() })
	})
	s.Set(1)
	if l.dirty != 0 {
		t.Error("untracked read subscribed listener")
	}
}
