package vango

import "testing"

func TestEffectRunsImmediatelyOutsideRender(t *testing.T) {
	count := NewSignal(0)
	var seen []int

	e := CreateEffect(func() Cleanup {
		seen = append(seen, count.Get())
		return nil
	})

	count.Set(1)
	count.Set(2)

	if len(seen) != 3 || seen[2] != 2 {
		t.Errorf("seen = %v, want [0 1 2]", seen)
	}
	if e.IsDisposed() {
		t.Error("effect should be live")
	}
}

func TestOwnedEffectRerunsOnCommit(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	count := NewSignal(0)
	runs := 0
	WithOwner(owner, func() {
		CreateEffect(func() Cleanup {
			_ = count.Get()
			runs++
			return nil
		})
	})
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}

	count.Set(1)
	if runs != 1 {
		t.Fatal("owned effect should wait for RunPendingEffects")
	}
	if !owner.HasPendingEffects() {
		t.Fatal("owner should report pending effects")
	}
	if n := owner.RunPendingEffects(); n != 1 {
		t.Errorf("RunPendingEffects = %d, want 1", n)
	}
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestEffectCleanup(t *testing.T) {
	owner := NewOwner(nil)
	count := NewSignal(0)
	cleanups := 0

	WithOwner(owner, func() {
		CreateEffect(func() Cleanup {
			_ = count.Get()
			return func() { cleanups++ }
		})
	})

	count.Set(1)
	owner.RunPendingEffects()
	if cleanups != 1 {
		t.Errorf("cleanups after rerun = %d, want 1", cleanups)
	}

	owner.Dispose()
	if cleanups != 2 {
		t.Errorf("cleanups after dispose = %d, want 2", cleanups)
	}

	count.Set(2)
	owner.RunPendingEffects()
	if cleanups != 2 {
		t.Error("disposed effect must not run again")
	}
}

func TestRenderEffectDeferredToCommit(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	runs := 0
	var first, second *Effect
	render := func() *Effect {
		var e *Effect
		WithOwner(owner, func() {
			owner.StartRender()
			defer owner.EndRender()
			e = CreateEffect(func() Cleanup {
				runs++
				return nil
			})
		})
		return e
	}

	first = render()
	if runs != 0 {
		t.Fatalf("effect ran during render, runs=%d", runs)
	}

	owner.RunPendingEffects()
	if runs != 1 {
		t.Fatalf("expected 1 run after commit, got %d", runs)
	}

	second = render()
	owner.RunPendingEffects()
	if first != second {
		t.Error("effect did not persist across renders")
	}
	if runs != 1 {
		t.Errorf("effect without changed deps re-ran, runs=%d", runs)
	}
}

func TestOnUnmountRegistersOncePerComponent(t *testing.T) {
	owner := NewOwner(nil)
	calls := 0
	last := ""

	for _, label := range []string{"first", "second", "third"} {
		label := label
		WithOwner(owner, func() {
			owner.StartRender()
			defer owner.EndRender()
			OnUnmount(func() {
				calls++
				last = label
			})
		})
	}

	owner.Dispose()
	if calls != 1 {
		t.Errorf("unmount callbacks = %d, want 1", calls)
	}
	if last != "third" {
		t.Errorf("unmount ran %q, want the latest callback", last)
	}
}
