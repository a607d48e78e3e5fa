package encoding

import (
	"fmt"
	"strings"

	"proteus/internal/services"
)

// ExitError reports an ffmpeg run that finished with a non-zero status.
type ExitError struct {
	// Code is the exit status, or -1 when the process was killed by a signal.
	Code int
	// Stderr holds the last lines ffmpeg wrote to stderr. Empty in verbose
	// mode, where stderr went straight to the terminal.
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("ffmpeg exited with status %d", e.Code)
	if last := lastLine(e.Stderr); last != "" {
		msg += ": " + last
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *ExitError) Is(target error) bool {
	return target == services.ErrSubprocess
}

func lastLine(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		return strings.TrimSpace(text[idx+1:])
	}
	return text
}

// tail keeps the most recent lines written to it.
type tail struct {
	lines []string
	limit int
}

func newTail(limit int) *tail {
	return &tail{limit: limit}
}

func (t *tail) add(line string) {
	if len(t.lines) == t.limit {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:t.limit-1]
	}
	t.lines = append(t.lines, line)
}

func (t *tail) String() string {
	return strings.Join(t.lines, "\n")
}
