// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - EnvStore: Loads and saves env files
//   - ConfigStore: Tool configuration
//   - Exporter: Renders an env in another format
//   - FileWatcher: Reports changes to an env file
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
