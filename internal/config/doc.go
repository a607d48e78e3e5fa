// Package config loads, normalizes, and validates proteus configuration.
//
// Every knob has a built-in default so the CLI works with no file at all. A
// TOML file is only read when the caller names one explicitly; there is no
// search path and no environment lookup. Paths are expanded (including tilde
// shortcuts) before decoding.
package config
