package vtest_test

import (
	"testing"

	"github.com/vango-dev/regctx/pkg/vango"
	"github.com/vango-dev/regctx/pkg/vdom"
	"github.com/vango-dev/regctx/pkg/vtest"
)

func TestMount_RendersTree(t *testing.T) {
	h := vtest.MountFunc(t, func() *vdom.VNode {
		return vdom.Div(vdom.TestID("root"), vdom.P("hello"))
	})

	root := h.FindByTestID("root")
	if root.Tag != "div" {
		t.Errorf("expected div, got %s", root.Tag)
	}
	vtest.ExpectContains(t, h.Tree(), "<p>hello</p>")
	vtest.ExpectChildCount(t, root, 1)
}

func TestAct_RerendersOnSignalChange(t *testing.T) {
	count := vango.NewSignal(0)
	h := vtest.MountFunc(t, func() *vdom.VNode {
		return vdom.P(vdom.TestID("count"), vdom.Textf("%d", count.Get()))
	})

	if got := h.FindByTestID("count").TextContent(); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}

	h.Act(func() { count.Set(5) })

	if got := h.FindByTestID("count").TextContent(); got != "5" {
		t.Errorf("expected 5, got %q", got)
	}
}

func TestQueryByText(t *testing.T) {
	h := vtest.MountFunc(t, func() *vdom.VNode {
		return vdom.Ul(vdom.Li("one"), vdom.Li("two"))
	})

	if h.QueryByText("two") == nil {
		t.Error("expected to find 'two'")
	}
	if h.QueryByText("three") != nil {
		t.Error("did not expect to find 'three'")
	}
	vtest.ExpectTexts(t, h.Tree(), "one", "two")

	if node := h.FindByText("one"); node.Tag != "li" {
		t.Errorf("FindByText(one) tag = %q, want li", node.Tag)
	}
}

func TestUnmount_RunsCleanups(t *testing.T) {
	unmounted := 0
	h := vtest.MountFunc(t, func() *vdom.VNode {
		vango.OnUnmount(func() { unmounted++ })
		return vdom.Div()
	})

	h.Unmount()
	h.Unmount()

	if unmounted != 1 {
		t.Errorf("expected 1 unmount, got %d", unmounted)
	}
}

func TestExpectNotContains(t *testing.T) {
	node := vdom.Div(vdom.Span("visible"))
	vtest.ExpectNotContains(t, node, "hidden")
	vtest.ExpectContains(t, node, "visible")
}
