package server

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/regctx/pkg/render"
	"github.com/vango-dev/regctx/pkg/vango"
	"github.com/vango-dev/regctx/pkg/vdom"
)

// Session owns a mounted component tree and drives its render/commit cycle.
//
// Mount, Flush, Dispatch, Tree and Close are serialized by the session, so a
// single tree is never rendered or committed concurrently.
type Session struct {
	id       string
	rootComp vdom.Component
	root     *ComponentInstance

	// owner is the root of the session's owner tree.
	owner *vango.Owner

	config   *SessionConfig
	logger   *slog.Logger
	tracer   trace.Tracer
	observer Observer

	mu      sync.Mutex
	mounted bool
	closed  bool

	dirtyMu sync.Mutex
	dirty   []*ComponentInstance

	stats SessionStats

	// renders counts renders of the pass in progress.
	renders int
}

// SessionStats are cumulative counters for a session.
type SessionStats struct {
	Components int
	Mounts     int
	Unmounts   int
	Renders    int
	Effects    int
	Flushes    int
}

// NewSession creates a session for root. A nil config uses
// DefaultSessionConfig; zero fields are filled from the defaults.
func NewSession(root vdom.Component, config *SessionConfig) *Session {
	config = config.withDefaults()
	id := uuid.NewString()

	return &Session{
		id:       id,
		rootComp: root,
		owner:    vango.NewOwner(nil),
		config:   config,
		logger:   config.Logger.With("session_id", id),
		tracer:   config.Tracer,
		observer: config.Observer,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Owner returns the root Owner of the session. Values set on it are visible
// to every component.
func (s *Session) Owner() *vango.Owner {
	return s.owner
}

// Root returns the root component instance, or nil before Mount.
func (s *Session) Root() *ComponentInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Mount renders the root component and flushes until the tree settles.
func (s *Session) Mount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.mounted {
		return ErrAlreadyMounted
	}
	s.mounted = true

	s.root = s.mountInstance(s.rootComp, "", nil)
	s.root.MarkDirty()

	return s.flushLocked(ctx)
}

// Flush renders dirty components and runs pending effects until the tree
// settles.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.flushLocked(ctx)
}

// Dispatch runs fn inside a batch on the session's root owner, then flushes.
// It is the way to update signals from event handlers and other goroutines.
func (s *Session) Dispatch(ctx context.Context, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}

	vango.WithOwner(s.owner, func() {
		vango.Batch(fn)
	})
	return s.flushLocked(ctx)
}

// Tree returns the expanded tree: component nodes replaced by their rendered
// output and fragments flattened into their parents.
func (s *Session) Tree() *vdom.VNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.root == nil {
		return nil
	}
	return expand(s.root)
}

// HTML renders the expanded tree.
func (s *Session) HTML() string {
	return render.RenderToString(s.Tree())
}

// Close unmounts the tree and disposes the session owner. It is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	vango.Batch(func() {
		if s.root != nil {
			s.root.Dispose()
		}
		s.owner.Dispose()
	})

	s.logger.Debug("session closed",
		"mounts", s.stats.Mounts,
		"renders", s.stats.Renders)
	return nil
}

func (s *Session) checkOpen() error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.mounted {
		return ErrNotMounted
	}
	return nil
}

// scheduleRender queues c for the next render pass. Safe from any goroutine.
func (s *Session) scheduleRender(c *ComponentInstance) {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	s.dirty = append(s.dirty, c)
}

// takeDirty drains the dirty queue, dropping unmounted instances, and orders
// the rest top-down.
func (s *Session) takeDirty() []*ComponentInstance {
	s.dirtyMu.Lock()
	queued := s.dirty
	s.dirty = nil
	s.dirtyMu.Unlock()

	live := queued[:0]
	for _, c := range queued {
		if !c.IsDisposed() {
			live = append(live, c)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Depth() < live[j].Depth()
	})
	return live
}

func (s *Session) flushLocked(ctx context.Context) (err error) {
	stats := FlushStats{Start: time.Now()}

	ctx, span := s.tracer.Start(ctx, "vango.session.flush",
		trace.WithAttributes(attribute.String("vango.session_id", s.id)))

	defer func() {
		stats.Duration = time.Since(stats.Start)
		stats.Err = err

		span.SetAttributes(
			attribute.Int("vango.flush.passes", stats.Passes),
			attribute.Int("vango.flush.renders", stats.Renders),
			attribute.Int("vango.flush.effects", stats.Effects),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		s.stats.Flushes++
		s.stats.Renders += stats.Renders
		s.stats.Effects += stats.Effects

		// Observers may annotate the span, so it ends after them.
		s.observer.OnFlush(ctx, s.id, stats)
		span.End()
	}()

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &SessionError{SessionID: s.id, Op: "flush", Err: ctxErr}
		}

		dirty := s.takeDirty()
		if len(dirty) == 0 && !s.owner.HasPendingEffects() {
			return nil
		}

		if stats.Passes >= s.config.MaxFlushPasses {
			s.logger.Warn("flush did not settle",
				"passes", stats.Passes,
				"dirty", len(dirty))
			return &SessionError{SessionID: s.id, Op: "flush", Err: ErrFlushLimit}
		}
		stats.Passes++

		s.renders = 0
		vango.Batch(func() {
			rendered := make(map[*ComponentInstance]bool, len(dirty))
			for _, c := range dirty {
				if rendered[c] || c.IsDisposed() || !c.IsDirty() {
					continue
				}
				s.renderInstance(c, rendered)
			}
		})
		stats.Renders += s.renders

		vango.Batch(func() {
			stats.Effects += s.owner.RunPendingEffects()
		})
	}
}

// renderInstance renders c, reconciles its child components and renders
// them too.
func (s *Session) renderInstance(c *ComponentInstance, rendered map[*ComponentInstance]bool) {
	c.ClearDirty()
	rendered[c] = true
	s.renders++

	tree := c.Render()
	s.reconcile(c, tree, rendered)
}

func (s *Session) mountInstance(comp vdom.Component, key string, parent *ComponentInstance) *ComponentInstance {
	inst := newComponentInstance(comp, key, parent, s)

	s.stats.Mounts++
	s.stats.Components++
	s.logger.Debug("component mounted",
		"instance", inst.InstanceID,
		"component", fmt.Sprintf("%T", comp))
	s.observer.OnMount(s.id, inst)
	return inst
}

// instanceUnmounted is called by ComponentInstance.Dispose.
func (s *Session) instanceUnmounted(inst *ComponentInstance) {
	s.stats.Unmounts++
	s.stats.Components--
	s.logger.Debug("component unmounted", "instance", inst.InstanceID)
	s.observer.OnUnmount(s.id, inst)
}
