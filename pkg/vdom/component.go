package vdom

import "reflect"

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// Identifier lets a component type decide which values count as the same
// component during reconciliation. Two components with equal identities keep
// the same mounted instance.
type Identifier interface {
	ComponentIdentity() any
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	if f.render == nil {
		return nil
	}
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Comp wraps a component in a component node.
func Comp(c Component) *VNode {
	if c == nil {
		return nil
	}
	return &VNode{Kind: KindComponent, Comp: c}
}

// Keyed wraps a component in a component node with a reconciliation key.
func Keyed(key string, c Component) *VNode {
	node := Comp(c)
	if node != nil {
		node.Key = key
	}
	return node
}

// SameComponent reports whether b can reuse the instance mounted for a.
func SameComponent(a, b Component) bool {
	if a == nil || b == nil {
		return a == b
	}

	if ia, ok := a.(Identifier); ok {
		ib, ok := b.(Identifier)
		return ok && ia.ComponentIdentity() == ib.ComponentIdentity()
	}

	fa, aok := a.(*FuncComponent)
	fb, bok := b.(*FuncComponent)
	if aok || bok {
		if !aok || !bok || fa.render == nil || fb.render == nil {
			return false
		}
		// Closures built from the same function literal share their code.
		return reflect.ValueOf(fa.render).Pointer() == reflect.ValueOf(fb.render).Pointer()
	}

	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
