package registration

import (
	"fmt"
	"testing"

	"github.com/vango-dev/regctx/pkg/vdom"
	"github.com/vango-dev/regctx/pkg/vtest"
)

func TestGlobal_UnmountedReadersUnsubscribe(t *testing.T) {
	rc := Create[string]()

	for i := 0; i < 50; i++ {
		h := vtest.MountFunc(t, func() *vdom.VNode {
			return vdom.Div(
				vdom.Func(func() *vdom.VNode {
					return vdom.Ul(vdom.Range(rc.Values(), func(_ int, v string) *vdom.VNode {
						return vdom.Li(v)
					}))
				}),
				vdom.Func(func() *vdom.VNode {
					rc.Register(fmt.Sprint("x", i))
					return vdom.Span()
				}),
			)
		})
		if n := rc.Global().sorted.SubscriberCount(); n != 1 {
			t.Fatalf("cycle %d: subscribers while mounted = %d, want 1", i, n)
		}
		h.Unmount()
	}

	if n := rc.Global().Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
	if n := rc.Global().sorted.SubscriberCount(); n != 0 {
		t.Errorf("subscribers after unmount = %d, want 0", n)
	}
}
