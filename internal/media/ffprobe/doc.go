// Package ffprobe wraps ffprobe JSON output as a generic key/value tree with
// typed views for the handful of fields proteus reads.
//
// Key types:
//   - Result: the decoded report tree plus typed Format and Stream views
//   - Prober: runs ffprobe for a full (format + streams) or format-only report
//
// Inspect and InspectFormat return errors; Probe and Duration absorb every
// failure (missing binary, non-zero exit, malformed JSON) into an empty result
// or zero duration so callers can fall back to defaults.
package ffprobe
