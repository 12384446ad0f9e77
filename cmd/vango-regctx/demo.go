package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/regctx/internal/config"
	"github.com/vango-dev/regctx/internal/demo"
	"github.com/vango-dev/regctx/internal/errors"
	"github.com/vango-dev/regctx/pkg/middleware"
	"github.com/vango-dev/regctx/pkg/server"
)

// demoFlags maps demo flags to config keys.
var demoFlags = map[string]string{
	"sections":         "demo.sections",
	"sort":             "demo.sort",
	"toggle":           "demo.toggle",
	"pretty":           "demo.pretty",
	"metrics":          "metrics.enabled",
	"namespace":        "metrics.namespace",
	"log-level":        "log.level",
	"max-flush-passes": "session.max_flush_passes",
	"slow-flush":       "tracing.slow_flush",
}

func demoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a document with a registered table of contents",
		Long: `Render a document whose sections register headings with a registration
context. The table of contents reads the sorted headings.

Each --toggle hides one section and renders again, showing the heading
removed when its section unmounts.

Examples:
  vango-regctx demo
  vango-regctx demo --sections Intro,Usage,API --sort title
  vango-regctx demo --toggle Usage --metrics
  REGCTX_DEMO_SORT=none vango-regctx demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := config.BindFlags(v, cmd.Flags(), demoFlags); err != nil {
				return err
			}
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return runDemo(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (yaml, toml or json)")
	flags.StringSlice("sections", nil, "Section titles in document order")
	flags.String("sort", config.SortOrder, "TOC order: order, title or none")
	flags.StringSlice("toggle", nil, "Sections to hide, one render each")
	flags.Bool("pretty", true, "Indent HTML output")
	flags.Bool("metrics", false, "Print Prometheus metrics after the run")
	flags.String("namespace", "vango", "Metrics namespace")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.Int("max-flush-passes", 100, "Render/commit passes allowed per flush")
	flags.Duration("slow-flush", 100*time.Millisecond, "Flag flushes slower than this on their span")

	return cmd
}

func runDemo(cmd *cobra.Command, cfg config.Config) error {
	out := cmd.OutOrStdout()

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(
		middleware.WithRegistry(registry),
		middleware.WithNamespace(cfg.Metrics.Namespace),
	)
	tracing := middleware.OpenTelemetry(
		middleware.WithTracerName(cfg.Tracing.TracerName),
		middleware.WithSlowFlush(cfg.Tracing.SlowFlush),
	)

	session := server.DefaultSessionConfig()
	session.MaxFlushPasses = cfg.Session.MaxFlushPasses
	session.Tracer = tracing.Tracer()
	session.Observer = server.Observers(metrics, tracing)

	frames, err := demo.Run(cmd.Context(), demo.Options{
		Sections: cfg.Demo.Sections,
		Sort:     cfg.Demo.Sort,
		Toggle:   cfg.Demo.Toggle,
		Pretty:   cfg.Demo.Pretty,
		Observer: metrics,
		Logger:   logger,
		Session:  session,
	})
	if err != nil {
		return runtimeError(err)
	}

	for _, f := range frames {
		titles := make([]string, len(f.Headings))
		for i, h := range f.Headings {
			titles[i] = h.Title
		}
		fmt.Fprintf(out, "<!-- %s: %s -->\n", f.Label, strings.Join(titles, ", "))
		fmt.Fprintln(out, strings.TrimRight(f.HTML, "\n"))
	}
	success(out, "rendered %d frame(s)", len(frames))

	if cfg.Metrics.Enabled {
		return writeMetrics(out, registry)
	}
	return nil
}

// writeMetrics writes every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// runtimeError attaches an error code to session failures.
func runtimeError(err error) error {
	switch {
	case stderrors.Is(err, server.ErrFlushLimit):
		return errors.FromError(err, "R020")
	case stderrors.Is(err, server.ErrSessionClosed):
		return errors.FromError(err, "R021")
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.FromError(err, "R022")
	default:
		return err
	}
}
