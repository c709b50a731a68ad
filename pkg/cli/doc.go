// Package cli provides shared helpers for the osprey commands: typed
// command errors and signal-driven shutdown contexts.
package cli
