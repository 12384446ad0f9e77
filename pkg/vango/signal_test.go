package vango

import "testing"

// testListener records MarkDirty calls.
type testListener struct {
	id    uint64
	dirty int
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) MarkDirty() { l.dirty++ }
func (l *testListener) ID() uint64 { return l.id }

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(1)
	if s.Get() != 1 {
		t.Fatalf("Get() = %d, want 1", s.Get())
	}
	s.Set(2)
	if s.Peek() != 2 {
		t.Errorf("Peek() = %d, want 2", s.Peek())
	}
	s.Update(func(n int) int { return n * 10 })
	if s.Peek() != 20 {
		t.Errorf("after Update = %d, want 20", s.Peek())
	}
}

func TestSignalNotifiesOnChangeOnly(t *testing.T) {
	s := NewSignal("a")
	l := newTestListener()

	WithListener(l, func() { _ = s.Get() })

	s.Set("a")
	if l.dirty != 0 {
		t.Errorf("equal write notified %d times", l.dirty)
	}
	s.Set("b")
	if l.dirty != 1 {
		t.Errorf("changed write notified %d times, want 1", l.dirty)
	}
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	s := NewSignal(0)
	l := newTestListener()

	WithListener(l, func() { _ = s.Peek() })
	s.Set(1)

	if l.dirty != 0 {
		t.Error("Peek should not subscribe")
	}
}

func TestSignalWithEquals(t *testing.T) {
	type item struct{ ID, Label string }
	s := NewSignal(item{"1", "a"}).WithEquals(func(a, b item) bool { return a.ID == b.ID })
	l := newTestListener()
	WithListener(l, func() { _ = s.Get() })

	s.Set(item{"1", "b"})
	if l.dirty != 0 {
		t.Error("custom equality should suppress notification")
	}
	if s.Peek().Label != "a" {
		t.Error("equal value should not be stored")
	}
}

func TestDefaultEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same int", 1, 1, true},
		{"different int", 1, 2, false},
		{"mixed dynamic types", 1, "1", false},
		{"same string", "x", "x", true},
		{"slices", []int{1, 2}, []int{1, 2}, true},
		{"nil values", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultEquals(tt.a, tt.b); got != tt.want {
				t.Errorf("DefaultEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSignalHookStableAcrossRenders(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	render := func(initial int) *Signal[int] {
		var s *Signal[int]
		WithOwner(owner, func() {
			owner.StartRender()
			defer owner.EndRender()
			s = NewSignal(initial)
		})
		return s
	}

	first := render(1)
	second := render(99)

	if first != second {
		t.Fatal("signal did not persist across renders")
	}
	if second.Peek() != 1 {
		t.Errorf("signal reinitialized on rerender, got %d", second.Peek())
	}
}

func TestMapSignal(t *testing.T) {
	m := NewMapSignal[string, int](nil)
	l := newTestListener()
	WithListener(l, func() { _ = m.Len() })

	m.SetKey("a", 1)
	m.SetKey("a", 1)
	if l.dirty != 1 {
		t.Errorf("notifications after set+same set = %d, want 1", l.dirty)
	}

	if v, ok := m.GetKey("a"); !ok || v != 1 {
		t.Errorf("GetKey(a) = %d, %v", v, ok)
	}

	if m.RemoveKey("missing") {
		t.Error("RemoveKey of absent key should report false")
	}
	if l.dirty != 1 {
		t.Error("removing an absent key must not notify")
	}

	m.UpdateKey("a", func(v int) int { return v + 1 })
	if v, _ := m.GetKey("a"); v != 2 {
		t.Errorf("UpdateKey result = %d, want 2", v)
	}

	if !m.RemoveKey("a") {
		t.Error("RemoveKey(a) should report true")
	}
	if m.HasKey("a") || m.Len() != 0 {
		t.Error("map should be empty")
	}
}

func TestMapSignalGetReturnsCopy(t *testing.T) {
	m := NewMapSignal(map[string]int{"a": 1})
	snapshot := m.Get()
	snapshot["b"] = 2

	if m.Peek()["b"] != 0 || len(m.Keys()) != 1 {
		t.Error("mutating Get() result must not affect the signal")
	}
}

func TestMapSignalClear(t *testing.T) {
	m := NewMapSignal(map[string]int{"a": 1, "b": 2})
	l := newTestListener()
	WithListener(l, func() { _ = m.Len() })

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() after Clear = %d", m.Len())
	}
	if l.dirty != 1 {
		t.Errorf("notifications after Clear = %d, want 1", l.dirty)
	}

	m.Clear()
	if l.dirty != 1 {
		t.Error("clearing an empty map must not notify")
	}
}
