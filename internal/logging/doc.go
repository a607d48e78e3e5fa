// Package logging assembles structured slog loggers and formatting helpers used
// across proteus.
//
// It owns the console and JSON handlers, centralizes level parsing, and exposes
// context-aware helpers so every log line emitted during an invocation carries
// the subcommand name and correlation ID. Logs always go to a single writer
// (stderr in the CLI) and never to files. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
