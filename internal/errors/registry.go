package errors

// Template defines a registered error.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Config errors (R001-R019)

	"R001": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Detail:     "A configuration value from a flag, REGCTX_ environment variable or config file was rejected.",
		Suggestion: "Run 'vango-regctx demo --help' to list accepted values.",
	},
	"R002": {
		Category:   CategoryConfig,
		Message:    "Config file could not be read",
		Detail:     "The file passed with --config does not exist or is not valid YAML, TOML or JSON.",
		Suggestion: "Check the path and that the extension matches the file format.",
	},

	// Runtime errors (R020-R039)

	"R020": {
		Category:   CategoryRuntime,
		Message:    "Flush did not settle",
		Detail:     "Rendering and effects kept scheduling each other past the allowed number of passes. An effect probably writes a signal it also reads.",
		Suggestion: "Break the cycle, or raise --max-flush-passes if the work really needs more passes.",
	},
	"R021": {
		Category: CategoryRuntime,
		Message:  "Session closed",
		Detail:   "The session was used after Close.",
	},
	"R022": {
		Category: CategoryRuntime,
		Message:  "Render canceled",
		Detail:   "The command's context was canceled before the session settled.",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
