package vdom

// If returns node when cond is true and nil otherwise.
// Element constructors skip nil, so If expresses conditional children.
func If(cond bool, node any) any {
	if cond {
		return node
	}
	return nil
}

// Range maps items to nodes, skipping nil results.
func Range[T any](items []T, fn func(int, T) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(i, item); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Walk visits v and its descendants in document order until fn returns false.
// Component nodes are visited but not rendered.
func Walk(v *VNode, fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, c := range v.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in document order matching pred.
func Find(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByTestID matches elements with the given data-testid.
func ByTestID(id string) func(*VNode) bool {
	return func(n *VNode) bool {
		v, ok := n.Attribute("data-testid")
		return n.Kind == KindElement && ok && v == id
	}
}

// ByText matches elements whose own text children equal text.
func ByText(text string) func(*VNode) bool {
	return func(n *VNode) bool {
		if n.Kind != KindElement {
			return false
		}
		own := ""
		hasText := false
		for _, c := range n.Children {
			if c != nil && c.Kind == KindText {
				own += c.Text
				hasText = true
			}
		}
		return hasText && own == text
	}
}
