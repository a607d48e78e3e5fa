package presenter

import (
	"strconv"
	"strings"

	"proteus/internal/transcode"
)

// Mode is the subcommand an encode was started from.
type Mode string

const (
	ModeConvert  Mode = "convert"
	ModeCompress Mode = "compress"
)

// Invocation captures what the user asked for so follow-up commands can be
// suggested in the same shape.
type Invocation struct {
	Mode  Mode
	Input string
	// Quality is the CRF value used for the run.
	Quality int
	// DefaultQuality is the quality convert applies without -q.
	DefaultQuality int
	// Level is the compression level name (compress only).
	Level      string
	Resolution string
	Slow       bool
	Force      bool
}

// base returns "proteus <mode> '<input>'".
func (inv Invocation) base() []string {
	mode := inv.Mode
	if mode == "" {
		mode = ModeConvert
	}
	return []string{"proteus", string(mode), "'" + inv.Input + "'"}
}

// ScaledDown reproduces the command with -r 1080 added.
func (inv Invocation) ScaledDown() string {
	parts := inv.base()
	if inv.Mode == ModeCompress {
		if inv.Level != "" && inv.Level != transcode.DefaultLevel {
			parts = append(parts, "-l "+inv.Level)
		}
	} else if inv.Quality != inv.DefaultQuality {
		parts = append(parts, "-q "+strconv.Itoa(inv.Quality))
	}
	parts = append(parts, "-r 1080")
	if inv.Force {
		parts = append(parts, "-f")
	}
	if inv.Slow {
		parts = append(parts, "--slow")
	}
	return strings.Join(parts, " ")
}

// MatchingLevel returns the compress command whose level uses the same
// quality as this convert run, or "" when no level matches.
func (inv Invocation) MatchingLevel() (transcode.Level, string) {
	if inv.Mode == ModeCompress {
		return transcode.Level{}, ""
	}
	level, ok := transcode.LevelForQuality(inv.Quality)
	if !ok {
		return transcode.Level{}, ""
	}
	parts := []string{"proteus", string(ModeCompress), "'" + inv.Input + "'"}
	if level.Name != transcode.DefaultLevel {
		parts = append(parts, "-l "+level.Name)
	}
	if inv.Resolution != "" {
		parts = append(parts, "-r "+inv.Resolution)
	}
	if inv.Slow {
		parts = append(parts, "--slow")
	}
	return level, strings.Join(parts, " ")
}

// CompressFurther suggests a follow-up command that should produce a smaller
// file: software encoding if unused, a lower resolution, and for compress the
// next heavier level. It returns "" when nothing smaller can be suggested.
func (inv Invocation) CompressFurther(sourceHeight int) string {
	var hints []string
	if !inv.Slow {
		hints = append(hints, "--slow")
	}

	current := sourceHeight
	if h, err := strconv.Atoi(inv.Resolution); err == nil {
		current = h
	}
	switch {
	case current > 720:
		hints = append(hints, "-r 720")
	case current > 480:
		hints = append(hints, "-r 480")
	}

	if inv.Mode == ModeCompress {
		level, err := transcode.LookupLevel(inv.Level)
		if err != nil {
			level, _ = transcode.LookupLevel(transcode.DefaultLevel)
		}
		if next, ok := level.Next(); ok {
			hints = append(hints, "-l "+next.Name)
		}
	}

	if len(hints) == 0 {
		return ""
	}
	parts := append(inv.base(), hints...)
	parts = append(parts, "-f")
	return strings.Join(parts, " ")
}
