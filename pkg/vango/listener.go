package vango

import "sync"

// Listener is anything that can be notified when a dependency changes.
// It is implemented by memos, effects and component instances.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// Components schedule a re-render, memos invalidate their cached value and
	// effects schedule a re-run.
	MarkDirty()

	// ID returns a unique identifier used for deduplication during batches.
	ID() uint64
}

// Cleanup is returned by effects. It is called before the effect re-runs and
// when the effect is disposed.
type Cleanup func()

// sourceTracker is implemented by listeners that remember what they read so
// they can unsubscribe before re-running.
type sourceTracker interface {
	Listener
	addSource(source *signalBase)
}

// Sources records the signals and memos a listener read. Listeners defined
// outside this package embed it to be recorded while tracking, then call
// ReleaseSources before tracking again and when they are disposed.
//
//	type instance struct {
//	    vango.Sources
//	    ...
//	}
//
//	func (c *instance) Render() {
//	    c.ReleaseSources(c)
//	    vango.WithListener(c, render)
//	}
type Sources struct {
	mu   sync.Mutex
	list []*signalBase
}

func (s *Sources) addSource(source *signalBase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.list {
		if existing == source {
			return
		}
	}
	s.list = append(s.list, source)
}

// ReleaseSources unsubscribes l from every recorded source and forgets them.
func (s *Sources) ReleaseSources(l Listener) {
	s.mu.Lock()
	list := s.list
	s.list = nil
	s.mu.Unlock()

	for _, source := range list {
		source.unsubscribe(l)
	}
}

// SourceCount returns the number of recorded sources.
func (s *Sources) SourceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}
