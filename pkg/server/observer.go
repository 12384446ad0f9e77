package server

import (
	"context"
	"time"
)

// FlushStats describes one Flush.
type FlushStats struct {
	Start    time.Time
	Duration time.Duration

	// Passes is the number of render/commit passes.
	Passes int

	// Renders counts component renders across all passes.
	Renders int

	// Effects counts effect runs across all passes.
	Effects int

	// Err is the error Flush returned, if any.
	Err error
}

// Observer is notified about session activity. Implementations must be safe
// for concurrent use when shared between sessions.
type Observer interface {
	OnFlush(ctx context.Context, sessionID string, stats FlushStats)
	OnMount(sessionID string, inst *ComponentInstance)
	OnUnmount(sessionID string, inst *ComponentInstance)
}

// NopObserver ignores all notifications. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) OnFlush(context.Context, string, FlushStats) {}
func (NopObserver) OnMount(string, *ComponentInstance)          {}
func (NopObserver) OnUnmount(string, *ComponentInstance)        {}

// Observers fans notifications out to every non-nil observer in order.
func Observers(obs ...Observer) Observer {
	list := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) OnFlush(ctx context.Context, id string, stats FlushStats) {
	for _, o := range m {
		o.OnFlush(ctx, id, stats)
	}
}

func (m multiObserver) OnMount(id string, inst *ComponentInstance) {
	for _, o := range m {
		o.OnMount(id, inst)
	}
}

func (m multiObserver) OnUnmount(id string, inst *ComponentInstance) {
	for _, o := range m {
		o.OnUnmount(id, inst)
	}
}
