// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Every VariableService call is a fresh load-mutate-save cycle against
// the env file; no state is kept between calls.
package services
