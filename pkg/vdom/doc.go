// Package vdom provides the virtual node model rendered by components.
//
// # Core Types
//
// VNode represents elements, text, fragments and components. Props holds
// attributes. Component is anything that can render to a VNode; Func adapts a
// plain render function.
//
// # Element API
//
// Elements are created using variadic factory functions. Arguments may be
// attributes, child nodes, strings (text), components, slices of those, or
// nil (skipped, which allows conditional children):
//
//	Div(Class("card"), TestID("main"),
//	    P(Text("Content")),
//	    If(show, Child()),
//	)
//
// # Component identity
//
// The runtime reuses a mounted component instance when the node at the same
// position (or with the same key) is the same component. SameComponent
// defines "same": the render function's code for Func components, the
// ComponentIdentity for Identifier implementations, and the dynamic type
// otherwise.
package vdom
