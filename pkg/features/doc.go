// Package features provides higher-level abstractions built on the vango,
// vdom and server packages.
//
// # Subsystems
//
//   - registration: descendants register values, ancestors read the sorted
//     collection
//
// Each subsystem is in its own sub-package:
//
//	import "github.com/vango-dev/regctx/pkg/features/registration"
//
// See the individual package documentation for detailed usage examples.
package features
