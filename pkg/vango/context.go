package vango

// Context passes a value down the owner tree.
// Create one with CreateContext, provide values with Provide or Provider,
// and read them with Use.
//
// Example:
//
//	var ThemeContext = vango.CreateContext("light")
//
//	func Button() *vdom.VNode {
//	    theme := ThemeContext.Use()
//	    return vdom.El("button", vdom.Class("btn-"+theme))
//	}
type Context[T any] struct {
	key          any
	defaultValue T
}

// contextKey makes every Context a distinct key in owner value maps.
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a context whose Use returns defaultValue when no
// ancestor provided a value.
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{defaultValue: defaultValue}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Provide stores value on the current owner, making it visible to the
// owner's descendants. It is a no-op without a current owner.
func (c *Context[T]) Provide(value T) {
	SetContext(c.key, value)
}

// Use returns the value from the nearest owner that provided one, or the
// default value.
func (c *Context[T]) Use() T {
	TrackHook(HookContext)

	if v, ok := c.Lookup(); ok {
		return v
	}
	return c.defaultValue
}

// Lookup is like Use but reports whether a provided value was found.
// It is not a hook and may be called conditionally.
func (c *Context[T]) Lookup() (T, bool) {
	owner := getCurrentOwner()
	if owner != nil {
		if value, found := owner.lookupValue(c.key); found {
			if typed, ok := value.(T); ok {
				return typed, true
			}
		}
	}
	var zero T
	return zero, false
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// SetContext sets a context value for the current component scope.
func SetContext(key, value any) {
	if owner := getCurrentOwner(); owner != nil {
		owner.SetValue(key, value)
	}
}

// GetContext retrieves a value from the nearest scope that set key.
// Returns nil if no value is found.
func GetContext(key any) any {
	if owner := getCurrentOwner(); owner != nil {
		return owner.GetValue(key)
	}
	return nil
}

// SetValue sets a value on this Owner.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()

	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue retrieves a value from this Owner or its ancestors.
func (o *Owner) GetValue(key any) any {
	v, _ := o.lookupValue(key)
	return v
}

func (o *Owner) lookupValue(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		v, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}
