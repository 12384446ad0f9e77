package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/regctx/pkg/features/registration"
	"github.com/vango-dev/regctx/pkg/server"
	"github.com/vango-dev/regctx/pkg/vdom"
	"github.com/vango-dev/regctx/pkg/vtest"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetrics(WithRegistry(reg), WithNamespace("test")), reg
}

func TestMetrics_RegistrationCounters(t *testing.T) {
	m, _ := newTestMetrics(t)
	store := registration.NewStore(
		registration.WithName[string]("toc"),
		registration.WithObserver[string](m),
	)

	store.Set("a", "x")
	store.Set("b", "y")
	store.Set("a", "z")
	store.Remove("b")

	if got := testutil.ToFloat64(m.registrations.WithLabelValues("toc", "register")); got != 2 {
		t.Errorf("register = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.registrations.WithLabelValues("toc", "update")); got != 1 {
		t.Errorf("update = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.registrations.WithLabelValues("toc", "remove")); got != 1 {
		t.Errorf("remove = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.registrants.WithLabelValues("toc")); got != 1 {
		t.Errorf("registrants = %v, want 1", got)
	}
}

func TestMetrics_FlushAndComponents(t *testing.T) {
	m, reg := newTestMetrics(t)

	h := vtest.MountFunc(t, func() *vdom.VNode {
		return vdom.Div(vdom.Func(func() *vdom.VNode { return vdom.Span("child") }))
	}, vtest.WithObserver(m))

	if got := testutil.ToFloat64(m.components); got != 2 {
		t.Errorf("mounted_components = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.flushes.WithLabelValues("success")); got != 1 {
		t.Errorf("flushes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.renders); got != 2 {
		t.Errorf("renders = %v, want 2", got)
	}

	h.Unmount()
	if got := testutil.ToFloat64(m.components); got != 0 {
		t.Errorf("mounted_components after unmount = %v, want 0", got)
	}

	if n, err := testutil.GatherAndCount(reg, "test_flush_duration_seconds"); err != nil || n != 1 {
		t.Errorf("flush_duration_seconds series = %d (err %v), want 1", n, err)
	}
}

func TestMetrics_FlushErrors(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.OnFlush(context.Background(), "s1", server.FlushStats{
		Duration: time.Millisecond,
		Passes:   100,
		Err:      &server.SessionError{Op: "flush", Err: server.ErrFlushLimit},
	})

	if got := testutil.ToFloat64(m.flushErrors.WithLabelValues("flush_limit")); got != 1 {
		t.Errorf("flush_limit errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.flushes.WithLabelValues("error")); got != 1 {
		t.Errorf("error flushes = %v, want 1", got)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{server.ErrFlushLimit, "flush_limit"},
		{&server.SessionError{Op: "flush", Err: context.DeadlineExceeded}, "timeout"},
		{context.Canceled, "canceled"},
		{server.ErrSessionClosed, "closed"},
		{errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Errorf("categorizeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestPrometheus_Singleton(t *testing.T) {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()

	reg := prometheus.NewRegistry()
	a := Prometheus(WithRegistry(reg))
	b := Prometheus(WithRegistry(reg))
	if a != b {
		t.Error("expected Prometheus to return the same instance")
	}
}
