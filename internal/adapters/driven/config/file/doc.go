// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based tool configuration in ~/.update-env/config.toml
package file
