package registration

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/vango-dev/regctx/pkg/vango"
)

// Store maps registrant ids to values and derives the sorted value sequence.
//
// Reads through Get, Values and Len subscribe the calling component, effect or
// memo. Writes notify subscribers only when the map actually changed.
type Store[T any] struct {
	name     string
	entries  *vango.MapSignal[ID, T]
	sorted   *vango.Memo[[]T]
	compare  func(a, b T) int
	observer Observer
	logger   *slog.Logger
}

// NewStore creates an empty store configured by opts.
func NewStore[T any](opts ...Option[T]) *Store[T] {
	return newStore(newConfig(opts))
}

func newStore[T any](cfg *config[T]) *Store[T] {
	s := &Store[T]{
		name:     cfg.name,
		compare:  cfg.compare,
		observer: cfg.observer,
		logger:   cfg.logger,
	}

	// Detach from the running render so the store does not take hook slots of
	// whichever component happens to create it.
	vango.WithOwner(nil, func() {
		s.entries = vango.NewMapSignal[ID, T](nil)
		if cfg.equals != nil {
			s.entries.WithEquals(cfg.equals)
		}
		s.sorted = vango.NewMemo(s.computeSorted)
	})
	return s
}

func (s *Store[T]) computeSorted() []T {
	entries := s.entries.Get()

	ids := make([]ID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ID) int {
		return cmp.Compare(a, b)
	})

	values := make([]T, len(ids))
	for i, id := range ids {
		values[i] = entries[id]
	}
	slices.SortStableFunc(values, s.compare)
	return values
}

// Name returns the label of the store's context.
func (s *Store[T]) Name() string {
	return s.name
}

// Get returns a copy of the id to value map.
func (s *Store[T]) Get() map[ID]T {
	return s.entries.Get()
}

// Values returns the sorted values. The slice is a fresh copy the caller may
// modify. Writes made inside a batch become visible when the batch completes.
func (s *Store[T]) Values() []T {
	return slices.Clone(s.sorted.Get())
}

// Peek is like Values but does not subscribe.
func (s *Store[T]) Peek() []T {
	return slices.Clone(s.sorted.Peek())
}

// Len returns the number of entries.
func (s *Store[T]) Len() int {
	return s.entries.Len()
}

// Set stores value under id, inserting or overwriting. Writing a value equal
// to the stored one, per the context's equality policy, is a no-op.
func (s *Store[T]) Set(id ID, value T) {
	var existed bool
	vango.Untracked(func() {
		existed = s.entries.HasKey(id)
	})

	if !s.entries.SetKey(id, value) {
		return
	}

	if existed {
		s.logger.Debug("registration updated", "context", s.name, "id", id)
		s.observer.OnUpdate(s.name, id)
	} else {
		s.logger.Debug("registration added", "context", s.name, "id", id)
		s.observer.OnRegister(s.name, id)
	}
	s.observer.OnSize(s.name, s.size())
}

// Remove deletes the entry for id. Removing an absent id is a no-op and
// notifies nobody.
func (s *Store[T]) Remove(id ID) {
	if !s.entries.RemoveKey(id) {
		return
	}

	s.logger.Debug("registration removed", "context", s.name, "id", id)
	s.observer.OnRemove(s.name, id)
	s.observer.OnSize(s.name, s.size())
}

func (s *Store[T]) size() int {
	var n int
	vango.Untracked(func() {
		n = s.entries.Len()
	})
	return n
}
