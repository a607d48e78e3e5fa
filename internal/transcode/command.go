package transcode

import (
	"slices"
	"strings"
)

// Command is a fully built ffmpeg invocation. Args always end with the
// "-y <output>" pair.
type Command struct {
	Binary string
	Args   []string
}

// WithProgress returns a copy that asks ffmpeg to emit machine-readable
// progress on stdout. The flags go immediately before the trailing
// "-y <output>" pair.
func (c Command) WithProgress() Command {
	args := slices.Clone(c.Args)
	at := max(0, len(args)-2)
	args = slices.Insert(args, at, "-progress", "pipe:1", "-nostats")
	return Command{Binary: c.Binary, Args: args}
}

// String renders the command for logs. Arguments containing spaces are quoted.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Binary))
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\"'") {
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return arg
}
