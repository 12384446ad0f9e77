// Package demo renders a document whose table of contents is collected from
// its sections through a registration context.
package demo

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/vango-dev/regctx/pkg/features/registration"
	"github.com/vango-dev/regctx/pkg/render"
	"github.com/vango-dev/regctx/pkg/server"
	"github.com/vango-dev/regctx/pkg/vango"
	"github.com/vango-dev/regctx/pkg/vdom"
)

// Heading is the value each section registers.
type Heading struct {
	Order  int
	Title  string
	Anchor string
}

// Sort orders.
const (
	SortOrder = "order"
	SortTitle = "title"
	SortNone  = "none"
)

// Options configures a demo run.
type Options struct {
	// Sections are the section titles in document order.
	Sections []string

	// Sort selects the TOC comparator.
	Sort string

	// Toggle lists sections to hide, one dispatch each.
	Toggle []string

	// Pretty indents the HTML frames.
	Pretty bool

	// Observer receives registration store mutations.
	Observer registration.Observer

	// Logger is shared by the session and the registration context.
	Logger *slog.Logger

	// Session configures the session. Logger is overridden when set above.
	Session *server.SessionConfig
}

// Frame is the document HTML after one step.
type Frame struct {
	Label    string
	Headings []Heading
	HTML     string
}

// Comparator returns the heading comparator for a sort order.
func Comparator(order string) (func(a, b Heading) int, error) {
	switch order {
	case SortOrder, "":
		return func(a, b Heading) int { return cmp.Compare(a.Order, b.Order) }, nil
	case SortTitle:
		return func(a, b Heading) int { return strings.Compare(a.Title, b.Title) }, nil
	case SortNone:
		// Equal keys leave activation order.
		return func(Heading, Heading) int { return 0 }, nil
	default:
		return nil, fmt.Errorf("demo: unknown sort order %q", order)
	}
}

// Anchor converts a title to a fragment identifier.
func Anchor(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// Document is the root component: a TOC followed by the visible sections.
type Document struct {
	Headings *registration.Context[Heading]

	sections []string
	hidden   *vango.MapSignal[string, bool]
	rendered []Heading
}

// NewDocument creates a document for the given section titles.
func NewDocument(sections []string, opts ...registration.Option[Heading]) *Document {
	opts = append([]registration.Option[Heading]{registration.WithName[Heading]("headings")}, opts...)
	return &Document{
		Headings: registration.Create(opts...),
		sections: slices.Clone(sections),
		hidden:   vango.NewMapSignal[string, bool](nil),
	}
}

// Hide removes a section from the document. Unknown titles are ignored.
func (d *Document) Hide(title string) {
	d.hidden.SetKey(title, true)
}

// Show restores a hidden section.
func (d *Document) Show(title string) {
	d.hidden.RemoveKey(title)
}

// TOC returns the headings of the last table of contents render.
func (d *Document) TOC() []Heading {
	return slices.Clone(d.rendered)
}

// Render implements vdom.Component.
func (d *Document) Render() *vdom.VNode {
	children := []any{vdom.Nav(vdom.Class("toc"), vdom.Func(d.toc))}
	for i, title := range d.sections {
		if d.hidden.HasKey(title) {
			continue
		}
		children = append(children, vdom.Keyed(title, section{doc: d, heading: Heading{
			Order:  i,
			Title:  title,
			Anchor: Anchor(title),
		}}))
	}
	return vdom.Div(vdom.Class("document"), d.Headings.Provider(children...))
}

func (d *Document) toc() *vdom.VNode {
	headings := d.Headings.Values()
	d.rendered = headings
	return vdom.Ul(vdom.TestID("toc"), vdom.Range(headings, func(_ int, h Heading) *vdom.VNode {
		return vdom.Li(vdom.El("a", vdom.Attr{Key: "href", Value: "#" + h.Anchor}, h.Title))
	}))
}

type section struct {
	doc     *Document
	heading Heading
}

func (s section) Render() *vdom.VNode {
	s.doc.Headings.Register(s.heading)
	return vdom.Section(vdom.ID(s.heading.Anchor),
		vdom.H2(s.heading.Title),
		vdom.P(vdom.Textf("Contents of %s.", s.heading.Title)),
	)
}

// Run mounts a document, then hides each toggled section in turn. It returns
// one frame for the initial render and one per toggle.
func Run(ctx context.Context, opts Options) ([]Frame, error) {
	compare, err := Comparator(opts.Sort)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	regOpts := []registration.Option[Heading]{
		registration.WithComparator(compare),
		registration.WithLogger[Heading](logger),
	}
	if opts.Observer != nil {
		regOpts = append(regOpts, registration.WithObserver[Heading](opts.Observer))
	}
	doc := NewDocument(opts.Sections, regOpts...)

	cfg := opts.Session.Clone()
	if cfg == nil {
		cfg = server.DefaultSessionConfig()
	}
	cfg.Logger = logger

	sess := server.NewSession(doc, cfg)
	defer sess.Close()

	if err := sess.Mount(ctx); err != nil {
		return nil, fmt.Errorf("demo: mount: %w", err)
	}

	renderer := render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty})
	frame := func(label string) (Frame, error) {
		html, err := renderer.RenderToString(sess.Tree())
		if err != nil {
			return Frame{}, fmt.Errorf("demo: render %s: %w", label, err)
		}
		return Frame{Label: label, Headings: doc.TOC(), HTML: html}, nil
	}

	first, err := frame("initial")
	if err != nil {
		return nil, err
	}
	frames := []Frame{first}

	for _, title := range opts.Toggle {
		if err := sess.Dispatch(ctx, func() { doc.Hide(title) }); err != nil {
			return frames, fmt.Errorf("demo: hide %q: %w", title, err)
		}
		f, err := frame("hide " + title)
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
		logger.Info("section hidden", "section", title, "headings", len(f.Headings))
	}

	return frames, nil
}
