package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/regctx/pkg/render"
	"github.com/vango-dev/regctx/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// Component nodes are rendered by calling their Render method directly,
// without a session.
//
// Example:
//
//	html := vtest.RenderToString(MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	return render.RenderToString(node)
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, h.Tree(), "Welcome Admin")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectChildCount asserts that node has n element children.
// Fragments are looked through.
func ExpectChildCount(t testing.TB, node *vdom.VNode, n int) {
	t.Helper()
	if node == nil {
		t.Errorf("expected %d children, got nil node", n)
		return
	}
	if got := len(node.ElementChildren()); got != n {
		t.Errorf("expected %d element children, got %d:\n%s", n, got, truncate(RenderToString(node), 500))
	}
}

// ExpectTexts asserts the text content of node's element children, in order.
func ExpectTexts(t testing.TB, node *vdom.VNode, want ...string) {
	t.Helper()
	children := node.ElementChildren()
	got := make([]string, len(children))
	for i, c := range children {
		got[i] = c.TextContent()
	}
	if len(got) != len(want) {
		t.Errorf("expected texts %q, got %q", want, got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected texts %q, got %q", want, got)
			return
		}
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
