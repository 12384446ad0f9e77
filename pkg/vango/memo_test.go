package vango

import "testing"

func TestMemoLazyAndCached(t *testing.T) {
	count := NewSignal(2)
	computes := 0
	doubled := NewMemo(func() int {
		computes++
		return count.Get() * 2
	})

	if computes != 0 {
		t.Fatal("memo should not compute before first Get")
	}
	if doubled.Get() != 4 || doubled.Get() != 4 {
		t.Fatal("unexpected memo value")
	}
	if computes != 1 {
		t.Errorf("computes = %d, want 1", computes)
	}

	count.Set(5)
	if doubled.Get() != 10 {
		t.Errorf("after change = %d, want 10", doubled.Get())
	}
	if computes != 2 {
		t.Errorf("computes = %d, want 2", computes)
	}
}

func TestMemoPropagatesToListener(t *testing.T) {
	src := NewSignal(1)
	memo := NewMemo(func() int { return src.Get() + 1 })
	l := newTestListener()

	WithListener(l, func() { _ = memo.Get() })

	src.Set(2)
	if l.dirty != 1 {
		t.Errorf("listener dirty = %d, want 1", l.dirty)
	}

	// Invalid memo does not propagate twice until it is read again.
	src.Set(3)
	if l.dirty != 1 {
		t.Errorf("listener dirty = %d, want 1 before re-read", l.dirty)
	}
	if memo.Peek() != 4 {
		t.Errorf("memo = %d, want 4", memo.Peek())
	}
}

func TestMemoBatchedRecomputesOnce(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(2)
	computes := 0
	sum := NewMemo(func() int {
		computes++
		return a.Get() + b.Get()
	})
	_ = sum.Get()

	Batch(func() {
		a.Set(10)
		b.Set(20)
	})

	if sum.Get() != 30 {
		t.Errorf("sum = %d, want 30", sum.Get())
	}
	if computes != 2 {
		t.Errorf("computes = %d, want 2", computes)
	}
}
