// Package domain defines the core business entities for update-env.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entry: A single KEY=VALUE pair
//   - Env: The ordered set of entries held by one env file
//   - Settings: Tool defaults read from the config file
//   - ExportFormat: Output formats supported by the export command
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
