// Package services defines shared utilities consumed by the command layer and
// the wrappers around external tools.
//
// Key responsibilities:
//   - Context helpers that stamp the invoked command name and a per-invocation
//     correlation identifier for logging.
//   - Structured error markers plus the Wrap helper so every user-facing
//     failure (missing tool, missing input, existing output, unknown level,
//     failed child process) can be classified with errors.Is.
//
// Use these helpers when wiring new commands so failure reporting stays uniform.
package services
