package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <p>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText
	Comp     Component // For KindComponent
}

// Props holds attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attribute returns the string value of an attribute, if present.
func (v *VNode) Attribute(key string) (string, bool) {
	if v == nil || v.Props == nil {
		return "", false
	}
	val, ok := v.Props[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// ElementChildren returns the element children of v, looking through
// fragments. Text and component nodes are skipped.
func (v *VNode) ElementChildren() []*VNode {
	if v == nil {
		return nil
	}
	var out []*VNode
	for _, c := range v.Children {
		switch {
		case c == nil:
		case c.Kind == KindElement:
			out = append(out, c)
		case c.Kind == KindFragment:
			out = append(out, c.ElementChildren()...)
		}
	}
	return out
}

// TextContent returns the concatenated text of v and its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var s string
	for _, c := range v.Children {
		s += c.TextContent()
	}
	return s
}
