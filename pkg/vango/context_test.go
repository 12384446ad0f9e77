package vango

import "testing"

func TestContextDefault(t *testing.T) {
	ctx := CreateContext("default")
	if got := ctx.Use(); got != "default" {
		t.Errorf("Use() = %q, want default", got)
	}
	if _, ok := ctx.Lookup(); ok {
		t.Error("Lookup without provider should report false")
	}
}

func TestContextScoping(t *testing.T) {
	ctx := CreateContext("default")
	root := NewOwner(nil)
	child := NewOwner(root)
	sibling := NewOwner(nil)

	WithOwner(root, func() { ctx.Provide("provided") })

	WithOwner(child, func() {
		if got := ctx.Use(); got != "provided" {
			t.Errorf("child Use() = %q, want provided", got)
		}
		ctx.Provide("nested")
		if got := ctx.Use(); got != "nested" {
			t.Errorf("child after override = %q, want nested", got)
		}
	})

	WithOwner(root, func() {
		if got := ctx.Use(); got != "provided" {
			t.Errorf("root = %q, want provided", got)
		}
	})

	WithOwner(sibling, func() {
		if got := ctx.Use(); got != "default" {
			t.Errorf("unrelated owner = %q, want default", got)
		}
	})
}

func TestContextNilPointerValue(t *testing.T) {
	type store struct{}
	ctx := CreateContext[*store](nil)
	owner := NewOwner(nil)

	var provided *store
	WithOwner(owner, func() { ctx.Provide(provided) })

	WithOwner(owner, func() {
		v, ok := ctx.Lookup()
		if !ok || v != nil {
			t.Errorf("Lookup() = %v, %v; want nil, true", v, ok)
		}
	})
}

func TestRefHook(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	var refs []*Ref[string]
	for i := 0; i < 2; i++ {
		WithOwner(owner, func() {
			owner.StartRender()
			defer owner.EndRender()
			r := NewRef("init")
			if !r.IsSet() {
				r.Set("set")
			}
			refs = append(refs, r)
		})
	}

	if refs[0] != refs[1] {
		t.Fatal("ref did not persist across renders")
	}
	if refs[1].Current() != "set" {
		t.Errorf("Current() = %q, want set", refs[1].Current())
	}
	refs[1].Clear()
	if refs[1].IsSet() || refs[1].Current() != "" {
		t.Error("Clear should reset the ref")
	}
}

func TestGetContext(t *testing.T) {
	type key struct{}
	root := NewOwner(nil)
	child := NewOwner(root)

	if got := GetContext(key{}); got != nil {
		t.Errorf("GetContext without owner = %v, want nil", got)
	}

	WithOwner(root, func() { SetContext(key{}, "theme") })

	WithOwner(child, func() {
		if got := GetContext(key{}); got != "theme" {
			t.Errorf("GetContext from child = %v, want theme", got)
		}
		if got := GetContext("missing"); got != nil {
			t.Errorf("GetContext(missing) = %v, want nil", got)
		}
	})
}
