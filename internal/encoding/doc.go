// Package encoding runs one ffmpeg child process to completion while keeping
// the user informed of its progress.
//
// In the default mode the child is asked to emit key=value progress records on
// stdout. The Runner reads them line by line, converts out_time against the
// probed duration into a percentage, and hands the latest value to a renderer
// goroutine through a single-slot mailbox so a slow terminal can never stall
// the read loop. Verbose mode attaches the child to the caller's stdio instead
// and shows no indicator.
//
// The child runs in its own process group. Cancelling the context terminates
// the whole group (SIGTERM, then SIGKILL after the grace period) before Run
// returns. Partial output files are left where ffmpeg wrote them.
package encoding
