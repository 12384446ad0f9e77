package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/regctx/pkg/vdom"
)

// ErrUnknownKind is returned for nodes with an unsupported VKind.
var ErrUnknownKind = errors.New("render: unknown node kind")

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output, one node per line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer renders VNode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindText:
		r.indent(w, depth)
		_, err := io.WriteString(w, escapeHTML(node.Text))
		r.newline(w)
		return err

	case vdom.KindFragment:
		return r.renderChildren(w, node.Children, depth)

	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render(), depth)

	case vdom.KindElement:
		return r.renderElement(w, node, depth)

	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, node.Kind)
	}
}

func (r *Renderer) renderChildren(w io.Writer, children []*vdom.VNode, depth int) error {
	for _, child := range children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	r.indent(w, depth)

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(node.Tag)
	writeAttrs(&sb, node.Props)
	sb.WriteByte('>')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	if vdom.IsVoidElement(node.Tag) {
		r.newline(w)
		return nil
	}

	if len(node.Children) > 0 {
		r.newline(w)
		if err := r.renderChildren(w, node.Children, depth+1); err != nil {
			return err
		}
		r.indent(w, depth)
	}

	_, err := io.WriteString(w, "</"+node.Tag+">")
	r.newline(w)
	return err
}

// writeAttrs writes attributes sorted by name so output is deterministic.
// Boolean attributes are written bare when true and omitted when false.
func writeAttrs(sb *strings.Builder, props vdom.Props) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := props[k].(type) {
		case nil:
		case bool:
			if v {
				sb.WriteByte(' ')
				sb.WriteString(k)
			}
		default:
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escapeHTML(fmt.Sprint(v)))
			sb.WriteByte('"')
		}
	}
}

func (r *Renderer) indent(w io.Writer, depth int) {
	if r.config.Pretty {
		io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	}
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}

// RenderToString renders node with the default configuration.
// Errors yield an empty string.
func RenderToString(node *vdom.VNode) string {
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}
