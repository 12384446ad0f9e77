package registration

// Observer is notified of store mutations. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	// OnRegister is called when an id is written for the first time.
	OnRegister(name string, id ID)

	// OnUpdate is called when an existing entry receives a different value.
	OnUpdate(name string, id ID)

	// OnRemove is called when an entry is removed.
	OnRemove(name string, id ID)

	// OnSize is called with the entry count after every mutation.
	OnSize(name string, size int)
}

// NopObserver ignores all events. Embed it to implement a subset of Observer.
type NopObserver struct{}

func (NopObserver) OnRegister(string, ID) {}
func (NopObserver) OnUpdate(string, ID)   {}
func (NopObserver) OnRemove(string, ID)   {}
func (NopObserver) OnSize(string, int)    {}
