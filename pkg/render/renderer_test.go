package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/regctx/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"nil", nil, ""},
		{"text escaped", vdom.Text("<b>&"), "&lt;b&gt;&amp;"},
		{"empty element", vdom.Div(), "<div></div>"},
		{"sorted attrs", vdom.Div(vdom.TestID("x"), vdom.Class("c")), `<div class="c" data-testid="x"></div>`},
		{"escaped attr", vdom.Div(vdom.Class(`a"b`)), `<div class="a&quot;b"></div>`},
		{"bool attrs", vdom.El("input", vdom.Attr{Key: "disabled", Value: true}, vdom.Attr{Key: "hidden", Value: false}), `<input disabled>`},
		{"fragment", vdom.Fragment(vdom.P(vdom.Text("a")), vdom.P(vdom.Text("b"))), "<p>a</p><p>b</p>"},
		{"component", vdom.Comp(vdom.Func(func() *vdom.VNode { return vdom.Span(vdom.Text("c")) })), "<span>c</span>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderer(RendererConfig{}).RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderPretty(t *testing.T) {
	html, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(
		vdom.Ul(vdom.Li(vdom.Text("one"))),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := "<ul>\n  <li>\n    one\n  </li>\n</ul>\n"
	if html != want {
		t.Errorf("pretty output = %q, want %q", html, want)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	if got := RenderToString(vdom.Div(&vdom.VNode{Kind: vdom.VKind(42)})); got != "" {
		t.Errorf("package RenderToString should swallow errors, got %q", got)
	}
	if !strings.Contains(RenderToString(vdom.P(vdom.Text("ok"))), "ok") {
		t.Error("package RenderToString lost content")
	}
}
