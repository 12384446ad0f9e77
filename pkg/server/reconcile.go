package server

import "github.com/vango-dev/regctx/pkg/vdom"

// componentNodes returns the component nodes of tree in document order,
// without descending into the components themselves.
func componentNodes(tree *vdom.VNode) []*vdom.VNode {
	var out []*vdom.VNode
	var walk func(n *vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if n.Kind == vdom.KindComponent {
			if n.Comp != nil {
				out = append(out, n)
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
	return out
}

// reconcile matches the component nodes of parent's new tree against its
// mounted children, unmounts the leftovers, mounts the newcomers and then
// renders every child.
//
// Keyed nodes match the unused child with the same key and component.
// Unkeyed nodes match the first unused unkeyed child with the same component.
func (s *Session) reconcile(parent *ComponentInstance, tree *vdom.VNode, rendered map[*ComponentInstance]bool) {
	nodes := componentNodes(tree)
	old := parent.Children
	used := make([]bool, len(old))

	next := make([]*ComponentInstance, 0, len(nodes))
	for _, node := range nodes {
		match := -1
		for i, inst := range old {
			if used[i] || inst.Key != node.Key {
				continue
			}
			if vdom.SameComponent(inst.Component, node.Comp) {
				match = i
				break
			}
		}

		if match >= 0 {
			used[match] = true
			inst := old[match]
			inst.Component = node.Comp
			next = append(next, inst)
			continue
		}

		next = append(next, s.mountInstance(node.Comp, node.Key, parent))
	}

	for i := len(old) - 1; i >= 0; i-- {
		if !used[i] {
			old[i].Dispose()
		}
	}
	parent.Children = next

	for _, child := range next {
		if child.IsDisposed() {
			continue
		}
		s.renderInstance(child, rendered)
	}
}

// expand returns inst's last tree with component nodes replaced by their
// instances' expanded output and fragments flattened into their parents.
func expand(inst *ComponentInstance) *vdom.VNode {
	if inst == nil || inst.lastTree == nil {
		return nil
	}

	next := 0
	nodes := expandNode(inst.lastTree, inst, &next)
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	default:
		return &vdom.VNode{Kind: vdom.KindFragment, Children: nodes}
	}
}

func expandNode(n *vdom.VNode, inst *ComponentInstance, next *int) []*vdom.VNode {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case vdom.KindComponent:
		if n.Comp == nil {
			return nil
		}
		if *next >= len(inst.Children) {
			return nil
		}
		child := inst.Children[*next]
		*next++
		if sub := expand(child); sub != nil {
			if sub.Kind == vdom.KindFragment {
				return sub.Children
			}
			return []*vdom.VNode{sub}
		}
		return nil

	case vdom.KindFragment:
		var out []*vdom.VNode
		for _, c := range n.Children {
			out = append(out, expandNode(c, inst, next)...)
		}
		return out

	case vdom.KindElement:
		el := &vdom.VNode{
			Kind:  vdom.KindElement,
			Tag:   n.Tag,
			Props: n.Props,
			Key:   n.Key,
		}
		for _, c := range n.Children {
			el.Children = append(el.Children, expandNode(c, inst, next)...)
		}
		return []*vdom.VNode{el}

	default:
		return []*vdom.VNode{n}
	}
}
