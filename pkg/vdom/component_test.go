package vdom

import "testing"

type staticComp struct{ label string }

func (s staticComp) Render() *VNode { return Text(s.label) }

type identified struct{ id any }

func (i identified) Render() *VNode          { return nil }
func (i identified) ComponentIdentity() any { return i.id }

func makeItem(label string) Component {
	return Func(func() *VNode { return Text(label) })
}

func TestSameComponent(t *testing.T) {
	otherLiteral := Func(func() *VNode { return nil })

	tests := []struct {
		name string
		a, b Component
		want bool
	}{
		{"same closure literal", makeItem("a"), makeItem("b"), true},
		{"different literals", makeItem("a"), otherLiteral, false},
		{"same struct type", staticComp{"a"}, staticComp{"b"}, true},
		{"func vs struct", makeItem("a"), staticComp{"a"}, false},
		{"equal identities", identified{1}, identified{1}, true},
		{"different identities", identified{1}, identified{2}, false},
		{"identifier vs plain", identified{1}, staticComp{}, false},
		{"nil", nil, makeItem("a"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameComponent(tt.a, tt.b); got != tt.want {
				t.Errorf("SameComponent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyed(t *testing.T) {
	n := Keyed("k", staticComp{})
	if n.Kind != KindComponent || n.Key != "k" {
		t.Errorf("Keyed node = %v key %q", n.Kind, n.Key)
	}
	if Comp(nil) != nil {
		t.Error("Comp(nil) should be nil")
	}
}
