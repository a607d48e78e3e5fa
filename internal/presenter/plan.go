package presenter

import (
	"errors"
	"fmt"
	"path/filepath"

	"proteus/internal/services"
	"proteus/internal/transcode"
)

// scaleHintHeight is the source height above which scaling down is suggested.
const scaleHintHeight = 1080

// PlanView holds what is shown before an encode starts.
type PlanView struct {
	Input       string
	Output      string
	InputMiB    float64
	EstimateMiB float64
	Hardware    bool
	Quality     int
	// SourceWidth and SourceHeight come from the probe, defaulted when unknown.
	SourceWidth  int
	SourceHeight int
	Invocation   Invocation
}

// EncoderLabel describes the selected encoder in the plan line.
func (v PlanView) EncoderLabel() string {
	if v.Hardware {
		return "⚡ hardware"
	}
	return fmt.Sprintf("CRF %d, slow", v.Quality)
}

// Plan prints the input/output line, the size estimate, an encoder hint and,
// for large sources with no resolution requested, a scale-down suggestion.
func (p *Presenter) Plan(v PlanView) {
	p.printf("🔱 %s → %s\n", p.st.bold.Sprint(filepath.Base(v.Input)), p.st.cyan.Sprint(filepath.Base(v.Output)))
	p.printf("   %s → ~%s estimated  %s\n",
		FormatSize(v.InputMiB), FormatSize(v.EstimateMiB), p.st.dim.Sprintf("(%s)", v.EncoderLabel()))
	if v.Hardware {
		p.println(p.st.dim.Sprint("📦 Add --slow for ~20% smaller files (5-10x slower)"))
	} else {
		p.println(p.st.dim.Sprint("⚡ Omit --slow for 5-10x faster encoding"))
	}
	if v.SourceHeight > scaleHintHeight && v.Invocation.Resolution == "" {
		p.println(p.st.dim.Sprintf("📐 Video is %dx%d. Scale down for faster encoding + smaller file:", v.SourceWidth, v.SourceHeight))
		p.println("   " + p.st.cyan.Sprint(v.Invocation.ScaledDown()))
	}
	if level, command := v.Invocation.MatchingLevel(); command != "" {
		p.println(p.st.dim.Sprintf("🗜  -q %d is the %s compress level:", v.Invocation.Quality, level.Name))
		p.println("   " + p.st.cyan.Sprint(command))
	}
}

// Done prints the success summary comparing input and output sizes.
func (p *Presenter) Done(inputMiB, outputMiB float64) {
	done := p.st.green.Sprint("✓ Done")
	switch {
	case inputMiB <= 0:
		p.printf("%s  → %s\n", done, FormatSize(outputMiB))
	case outputMiB > 0 && outputMiB < inputMiB:
		factor := inputMiB / outputMiB
		p.printf("%s  %s → %s  %s  %s\n", done, FormatSize(inputMiB), FormatSize(outputMiB),
			p.st.cyan.Sprintf("%.1fx smaller", factor),
			p.st.dim.Sprintf("(saved %s)", FormatSize(inputMiB-outputMiB)))
	default:
		p.printf("%s  %s → %s\n", done, FormatSize(inputMiB), FormatSize(outputMiB))
	}
}

// CompressFurther prints a follow-up command suggestion when one exists.
func (p *Presenter) CompressFurther(inv Invocation, sourceHeight int) {
	suggestion := inv.CompressFurther(sourceHeight)
	if suggestion == "" {
		return
	}
	p.println(p.st.dim.Sprint("📉 Compress further: ") + p.st.cyan.Sprint(suggestion))
}

// Failed prints the failure line shown after a non-zero ffmpeg exit.
func (p *Presenter) Failed() {
	p.printf("%s — run with %s to see details\n", p.st.red.Sprint("✗ Failed"), p.st.cyan.Sprint("--verbose"))
}

// Error prints err for the user, with a remedy where one is known.
func (p *Presenter) Error(err error) {
	if err == nil {
		return
	}
	var exists *transcode.OutputExistsError
	switch {
	case errors.As(err, &exists):
		p.printf("%s Output file already exists: %s\n", p.st.yellow.Sprint("Warning:"), p.st.cyan.Sprint(exists.Path))
		p.printf("  Use %s or %s to overwrite\n", p.st.cyan.Sprint("--force"), p.st.cyan.Sprint("-f"))
	case errors.Is(err, services.ErrInterrupted):
		p.println(p.st.yellow.Sprint("Interrupted.") + " Partial output, if any, was left in place.")
	default:
		p.printf("%s %s\n", p.st.red.Sprint("Error:"), err.Error())
		if !services.IsUserFacing(err) {
			p.println(p.st.dim.Sprint("  Run 'proteus --help' for usage."))
		}
	}
}
