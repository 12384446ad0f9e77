package vdom

import "fmt"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element with the given tag.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component,
// []Component, string, or []any holding any of those.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}
	appendArgs(node, args)
	return node
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}
	appendArgs(node, children)
	return node
}

func appendArgs(node *VNode, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Attr:
			setAttr(node, v)
		case []Attr:
			for _, a := range v {
				setAttr(node, a)
			}
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, Comp(v))
		case []Component:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, Comp(c))
				}
			}
		case []any:
			appendArgs(node, v)
		default:
			node.Children = append(node.Children, Text(fmt.Sprint(v)))
		}
	}
}

func setAttr(node *VNode, a Attr) {
	if a.IsEmpty() {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	if node.Props == nil {
		node.Props = make(Props)
	}
	node.Props[a.Key] = a.Value
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

func Div(args ...any) *VNode  { return El("div", args...) }
func P(args ...any) *VNode    { return El("p", args...) }
func Span(args ...any) *VNode { return El("span", args...) }
func Ul(args ...any) *VNode   { return El("ul", args...) }
func Li(args ...any) *VNode   { return El("li", args...) }
func Nav(args ...any) *VNode  { return El("nav", args...) }
func H1(args ...any) *VNode   { return El("h1", args...) }
func H2(args ...any) *VNode   { return El("h2", args...) }
func Section(args ...any) *VNode {
	return El("section", args...)
}

// Attribute helpers

func ID(id string) Attr            { return Attr{Key: "id", Value: id} }
func Class(class string) Attr      { return Attr{Key: "class", Value: class} }
func TestID(id string) Attr        { return Attr{Key: "data-testid", Value: id} }
func Key(key string) Attr          { return Attr{Key: "key", Value: key} }
func Data(name, value string) Attr { return Attr{Key: "data-" + name, Value: value} }
