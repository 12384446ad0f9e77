package vtest

import (
	"context"
	"log/slog"
	"testing"

	"github.com/vango-dev/regctx/pkg/server"
	"github.com/vango-dev/regctx/pkg/vdom"
)

// Harness is a mounted component under test.
type Harness struct {
	t       testing.TB
	session *server.Session
	closed  bool
}

// Option configures the session used by Mount.
type Option func(*server.SessionConfig)

// WithConfig copies fields from cfg into the session configuration.
func WithConfig(cfg *server.SessionConfig) Option {
	return func(c *server.SessionConfig) {
		if cfg != nil {
			*c = *cfg.Clone()
		}
	}
}

// WithObserver sets the session observer.
func WithObserver(obs server.Observer) Option {
	return func(c *server.SessionConfig) {
		c.Observer = obs
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *server.SessionConfig) {
		c.Logger = logger
	}
}

// WithMaxFlushPasses bounds the passes of each flush.
func WithMaxFlushPasses(n int) Option {
	return func(c *server.SessionConfig) {
		c.MaxFlushPasses = n
	}
}

// Mount mounts root in a new session and fails the test if mounting fails.
func Mount(t testing.TB, root vdom.Component, opts ...Option) *Harness {
	t.Helper()

	cfg := server.DefaultSessionConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	h := &Harness{
		t:       t,
		session: server.NewSession(root, cfg),
	}
	t.Cleanup(func() {
		h.Unmount()
	})

	if err := h.session.Mount(context.Background()); err != nil {
		t.Fatalf("vtest: mount: %v", err)
	}
	return h
}

// MountFunc mounts a render function as the root component.
func MountFunc(t testing.TB, render func() *vdom.VNode, opts ...Option) *Harness {
	t.Helper()
	return Mount(t, vdom.Func(render), opts...)
}

// Session returns the underlying session.
func (h *Harness) Session() *server.Session {
	return h.session
}

// Act runs fn as an event handler would, then flushes until the tree settles.
func (h *Harness) Act(fn func()) {
	h.t.Helper()
	if err := h.session.Dispatch(context.Background(), fn); err != nil {
		h.t.Fatalf("vtest: act: %v", err)
	}
}

// Flush renders pending updates and runs pending effects.
func (h *Harness) Flush() {
	h.t.Helper()
	if err := h.session.Flush(context.Background()); err != nil {
		h.t.Fatalf("vtest: flush: %v", err)
	}
}

// Tree returns the expanded rendered tree.
func (h *Harness) Tree() *vdom.VNode {
	return h.session.Tree()
}

// HTML returns the rendered HTML.
func (h *Harness) HTML() string {
	return h.session.HTML()
}

// QueryByTestID returns the first element with the given data-testid, or nil.
func (h *Harness) QueryByTestID(id string) *vdom.VNode {
	return vdom.Find(h.Tree(), vdom.ByTestID(id))
}

// FindByTestID is like QueryByTestID but fails the test when nothing matches.
func (h *Harness) FindByTestID(id string) *vdom.VNode {
	h.t.Helper()
	node := h.QueryByTestID(id)
	if node == nil {
		h.t.Fatalf("vtest: no element with data-testid %q in:\n%s", id, truncate(h.HTML(), 500))
	}
	return node
}

// QueryByText returns the first element whose own text equals text, or nil.
func (h *Harness) QueryByText(text string) *vdom.VNode {
	return vdom.Find(h.Tree(), vdom.ByText(text))
}

// FindByText is like QueryByText but fails the test when nothing matches.
func (h *Harness) FindByText(text string) *vdom.VNode {
	h.t.Helper()
	node := h.QueryByText(text)
	if node == nil {
		h.t.Fatalf("vtest: no element with text %q in:\n%s", text, truncate(h.HTML(), 500))
	}
	return node
}

// Unmount closes the session, running every unmount hook.
// It is safe to call more than once.
func (h *Harness) Unmount() {
	if h.closed {
		return
	}
	h.closed = true
	_ = h.session.Close()
}
