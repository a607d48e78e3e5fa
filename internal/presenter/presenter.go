package presenter

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Presenter writes user-facing output to a single writer.
type Presenter struct {
	out      io.Writer
	colorize bool
	st       styles
	pick     func(n int) int
}

type styles struct {
	bold   *color.Color
	cyan   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	accent *color.Color
}

// New returns a presenter that colours output only when out is a terminal.
func New(out io.Writer) *Presenter {
	return NewWithColor(out, ShouldColorize(out))
}

// NewWithColor returns a presenter with colour forced on or off.
func NewWithColor(out io.Writer, colorize bool) *Presenter {
	if out == nil {
		out = os.Stdout
	}
	p := &Presenter{
		out:      out,
		colorize: colorize,
		pick:     rand.IntN,
		st: styles{
			bold:   color.New(color.Bold),
			cyan:   color.New(color.FgCyan),
			green:  color.New(color.Bold, color.FgGreen),
			red:    color.New(color.Bold, color.FgRed),
			yellow: color.New(color.Bold, color.FgYellow),
			dim:    color.New(color.Faint),
			accent: color.New(color.Bold, color.FgBlue),
		},
	}
	for _, c := range []*color.Color{p.st.bold, p.st.cyan, p.st.green, p.st.red, p.st.yellow, p.st.dim, p.st.accent} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// ShouldColorize reports whether writer is an interactive terminal.
func ShouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *Presenter) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *Presenter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
