// Package config loads configuration for the vango-regctx CLI.
//
// Values come from, in increasing priority: built-in defaults, an optional
// config file (YAML, TOML or JSON, chosen by extension), environment
// variables prefixed with REGCTX_, and command-line flags.
//
// # Configuration File Structure
//
//	session:
//	  max_flush_passes: 100
//	log:
//	  level: info
//	demo:
//	  sections: [Intro, Usage, API]
//	  sort: order
//	  toggle: [Usage]
//	  pretty: true
//	metrics:
//	  enabled: true
//	  namespace: vango
//	tracing:
//	  tracer_name: vango
//	  slow_flush: 100ms
//
// Nested keys map to environment variables with dots replaced by
// underscores, so demo.sort is REGCTX_DEMO_SORT.
package config
