package demo

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/vango-dev/regctx/pkg/vtest"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func titles(hs []Heading) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Title
	}
	return out
}

func TestRun_SortOrders(t *testing.T) {
	sections := []string{"Usage", "Introduction", "API"}
	tests := []struct {
		sort string
		want []string
	}{
		{SortOrder, []string{"Usage", "Introduction", "API"}},
		{SortTitle, []string{"API", "Introduction", "Usage"}},
		{SortNone, []string{"Usage", "Introduction", "API"}},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			frames, err := Run(context.Background(), Options{
				Sections: sections,
				Sort:     tt.sort,
				Logger:   quiet,
			})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if len(frames) != 1 {
				t.Fatalf("frames = %d, want 1", len(frames))
			}
			if got := titles(frames[0].Headings); !slices.Equal(got, tt.want) {
				t.Errorf("headings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_ToggleRemovesHeading(t *testing.T) {
	frames, err := Run(context.Background(), Options{
		Sections: []string{"Introduction", "Usage", "API"},
		Toggle:   []string{"Usage", "API"},
		Logger:   quiet,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(frames))
	}

	want := [][]string{
		{"Introduction", "Usage", "API"},
		{"Introduction", "API"},
		{"Introduction"},
	}
	for i, f := range frames {
		if got := titles(f.Headings); !slices.Equal(got, want[i]) {
			t.Errorf("frame %d (%s) headings = %v, want %v", i, f.Label, got, want[i])
		}
	}

	if strings.Contains(frames[1].HTML, `href="#usage"`) {
		t.Errorf("hidden section still linked: %s", frames[1].HTML)
	}
	if frames[1].Label != "hide Usage" {
		t.Errorf("label = %q", frames[1].Label)
	}
}

func TestRun_HTMLLinksSections(t *testing.T) {
	frames, err := Run(context.Background(), Options{
		Sections: []string{"Getting Started"},
		Logger:   quiet,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	html := frames[0].HTML
	for _, want := range []string{`href="#getting-started"`, `id="getting-started"`, "<h2>Getting Started</h2>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRun_UnknownSort(t *testing.T) {
	if _, err := Run(context.Background(), Options{Sort: "random"}); err == nil {
		t.Error("expected error for unknown sort")
	}
}

func TestDocument_HideShow(t *testing.T) {
	doc := NewDocument([]string{"A", "B", "C"})
	h := vtest.Mount(t, doc, vtest.WithLogger(quiet))

	vtest.ExpectTexts(t, h.FindByTestID("toc"), "A", "B", "C")

	h.Act(func() { doc.Hide("B") })
	vtest.ExpectTexts(t, h.FindByTestID("toc"), "A", "C")

	h.Act(func() { doc.Show("B") })
	vtest.ExpectTexts(t, h.FindByTestID("toc"), "A", "B", "C")
	if got := titles(doc.TOC()); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("TOC = %v", got)
	}
}

func TestAnchor(t *testing.T) {
	tests := map[string]string{
		"Introduction":     "introduction",
		"Getting  Started": "getting-started",
		" API Reference ":  "api-reference",
	}
	for in, want := range tests {
		if got := Anchor(in); got != want {
			t.Errorf("Anchor(%q) = %q, want %q", in, got, want)
		}
	}
}
