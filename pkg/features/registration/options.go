package registration

import "log/slog"

// DefaultName labels contexts created without WithName.
const DefaultName = "registration"

// Option configures a registration context.
type Option[T any] func(*config[T])

type config[T any] struct {
	name     string
	compare  func(a, b T) int
	equals   func(a, b T) bool
	observer Observer
	logger   *slog.Logger
	newID    func() ID
}

func newConfig[T any](opts []Option[T]) *config[T] {
	cfg := &config[T]{
		name:     DefaultName,
		compare:  defaultCompare[T],
		observer: NopObserver{},
		logger:   slog.Default(),
		newID:    NewID,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithComparator orders values with cmp, which returns a negative number when
// a sorts before b, zero when they are equivalent and a positive number
// otherwise. Equivalent values keep activation order.
func WithComparator[T any](cmp func(a, b T) int) Option[T] {
	return func(c *config[T]) {
		if cmp != nil {
			c.compare = cmp
		}
	}
}

// WithEquals sets the policy deciding whether a re-rendered value differs
// from the registered one. Equal values cause no store write.
// The default is vango.DefaultEquals.
func WithEquals[T any](eq func(a, b T) bool) Option[T] {
	return func(c *config[T]) {
		c.equals = eq
	}
}

// WithName labels the context in logs and metrics.
func WithName[T any](name string) Option[T] {
	return func(c *config[T]) {
		if name != "" {
			c.name = name
		}
	}
}

// WithObserver reports store mutations to obs.
func WithObserver[T any](obs Observer) Option[T] {
	return func(c *config[T]) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// WithLogger sets the logger for store mutations, logged at debug level.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *config[T]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDGenerator replaces NewID. Generated ids must be unique and should
// increase over time, since they order values before the comparator does.
func WithIDGenerator[T any](gen func() ID) Option[T] {
	return func(c *config[T]) {
		if gen != nil {
			c.newID = gen
		}
	}
}
