package presenter

import (
	"fmt"
	"io"
	"math"

	"github.com/schollz/progressbar/v3"
)

const barWidth = 40

// Bar adapts a terminal progress bar to percent updates from the runner.
type Bar struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

// ProgressBar returns a 0-100 bar drawn on the presenter's writer.
func (p *Presenter) ProgressBar(description string) *Bar {
	theme := progressbar.Theme{
		Saucer:        "━",
		SaucerPadding: " ",
		BarStart:      "",
		BarEnd:        "",
	}
	if p.colorize {
		theme.Saucer = "[cyan]━[reset]"
	}
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(barWidth),
		progressbar.OptionSetTheme(theme),
		progressbar.OptionEnableColorCodes(p.colorize),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Bar{out: p.out, bar: bar}
}

// Update moves the bar to percent.
func (b *Bar) Update(percent float64) {
	_ = b.bar.Set(int(math.Round(percent)))
}

// Finish completes the bar on success and freezes it where it stopped on
// failure.
func (b *Bar) Finish(success bool) {
	if success {
		_ = b.bar.Finish()
	} else {
		_ = b.bar.Exit()
	}
	fmt.Fprintln(b.out)
}
