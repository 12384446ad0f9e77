// Package errors provides coded, actionable error messages for the
// vango-regctx CLI.
//
// Each error has a code (e.g. "R001") that maps to a short message, a
// longer explanation and a suggested fix. Codes are grouped by category:
//   - config (R001-R019): flags, environment and config files
//   - runtime (R020-R039): session flushes and rendering
//
// # Usage
//
//	if err := cfg.Validate(); err != nil {
//	    return errors.FromError(err, "R001")
//	}
//
// At the top level, main prints the formatted error:
//
//	ERROR R001: Invalid configuration
//
//	  A configuration value from a flag, REGCTX_ environment variable or
//	  config file was rejected.
//
//	  Cause: config: demo.sort must be one of order, title, none; got "x"
//
//	  Hint: Run 'vango-regctx demo --help' to list accepted values.
package errors
