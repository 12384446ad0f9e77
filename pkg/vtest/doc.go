// Package vtest provides testing helpers for Vango components.
//
// The vtest package mounts a component in a real session, lets the test
// mutate state the way an event handler would, and queries the rendered
// tree.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    count := vango.NewSignal(0)
//	    h := vtest.Mount(t, vdom.Func(func() *vdom.VNode {
//	        return vdom.P(vdom.TestID("count"), vdom.Textf("%d", count.Get()))
//	    }))
//
//	    h.Act(func() { count.Set(1) })
//
//	    if got := h.FindByTestID("count").TextContent(); got != "1" {
//	        t.Errorf("count = %q, want 1", got)
//	    }
//	}
//
// Mount flushes until the tree settles, so effects scheduled by the first
// render have run when it returns. Act does the same after its function.
// The session is closed by t.Cleanup unless Unmount was called first.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, h.Tree(), "Welcome")
//	vtest.ExpectNotContains(t, h.Tree(), "Login")
package vtest
