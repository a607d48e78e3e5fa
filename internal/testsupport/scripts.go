package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteScript writes an executable /bin/sh script named name into dir and
// returns its path.
func WriteScript(t testing.TB, dir, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	target := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

// FFmpegScript describes the behaviour of a stub transcoder.
type FFmpegScript struct {
	// ProgressLines are printed to stdout, one per line.
	ProgressLines []string
	// StderrLines are printed to stderr.
	StderrLines []string
	// OutputBytes, when positive, are written to the last argument (the output path).
	OutputBytes int
	// ExitCode is the stub's exit status.
	ExitCode int
	// ArgsFile, when set, receives the stub's argv, one argument per line.
	ArgsFile string
	// SleepSeconds pauses after printing progress, before writing output.
	SleepSeconds int
	// PIDFile, when set, receives the stub's process id.
	PIDFile string
}

// Body renders the script body.
func (s FFmpegScript) Body() string {
	var b strings.Builder
	if s.PIDFile != "" {
		fmt.Fprintf(&b, "echo $$ > %s\n", shellQuote(s.PIDFile))
	}
	if s.ArgsFile != "" {
		fmt.Fprintf(&b, "for arg in \"$@\"; do printf '%%s\\n' \"$arg\"; done > %s\n", shellQuote(s.ArgsFile))
	}
	for _, line := range s.ProgressLines {
		fmt.Fprintf(&b, "printf '%%s\\n' %s\n", shellQuote(line))
	}
	for _, line := range s.StderrLines {
		fmt.Fprintf(&b, "printf '%%s\\n' %s >&2\n", shellQuote(line))
	}
	if s.SleepSeconds > 0 {
		fmt.Fprintf(&b, "sleep %d\n", s.SleepSeconds)
	}
	if s.OutputBytes > 0 {
		b.WriteString("for last in \"$@\"; do :; done\n")
		fmt.Fprintf(&b, "head -c %d /dev/zero > \"$last\"\n", s.OutputBytes)
	}
	fmt.Fprintf(&b, "exit %d\n", s.ExitCode)
	return b.String()
}

// FFprobeBody renders a stub ffprobe that prints report and exits with code.
func FFprobeBody(report string, code int) string {
	return fmt.Sprintf("cat <<'PROTEUS_EOF'\n%s\nPROTEUS_EOF\nexit %d\n", report, code)
}

// SampleReport is a representative ffprobe report for a 180 second 4K clip.
const SampleReport = `{
  "streams": [
    {"index": 0, "codec_name": "hevc", "codec_type": "video", "width": 3840, "height": 2160, "r_frame_rate": "30000/1001"},
    {"index": 1, "codec_name": "aac", "codec_type": "audio", "sample_rate": "48000", "channels": 2}
  ],
  "format": {
    "filename": "clip.mov",
    "nb_streams": 2,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "format_long_name": "QuickTime / MOV",
    "duration": "180.000000",
    "size": "524288000",
    "bit_rate": "23301801"
  }
}`

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
