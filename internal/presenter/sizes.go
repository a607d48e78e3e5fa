package presenter

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"

	"proteus/internal/estimate"
	"proteus/internal/transcode"
)

// shortNameLimit is the filename length from which example commands use a
// placeholder name.
const shortNameLimit = 20

// SizesView describes the file the sizes table is computed for.
type SizesView struct {
	Name     string
	InputMiB float64
	// Scale is the resolution factor from -r, 1 when unchanged.
	Scale float64
	// Resolution is echoed into the example commands when set.
	Resolution string
	// DefaultQuality is what convert applies without -q.
	DefaultQuality int
}

// SizeRow is one estimate in the sizes table.
type SizeRow struct {
	Setting     string
	Quality     int
	EstimateMiB float64
	Reduction   float64
	Command     string
}

// SizeRows computes the convert quality presets followed by every compress level.
func SizeRows(v SizesView) []SizeRow {
	name := v.Name
	if len(name) >= shortNameLimit {
		name = "video.mp4"
	}
	scale := v.Scale
	if scale <= 0 {
		scale = 1
	}
	defaultQuality := v.DefaultQuality
	if defaultQuality <= 0 {
		defaultQuality = transcode.DefaultQuality
	}
	suffix := ""
	if v.Resolution != "" {
		suffix = " -r " + v.Resolution
	}

	type preset struct {
		setting string
		quality int
		command string
	}
	presets := []preset{
		{"High quality", 18, "proteus convert " + name + " -q 18"},
		{"Good quality (default)", defaultQuality, "proteus convert " + name},
		{"Smaller file", 28, "proteus convert " + name + " -q 28"},
	}
	for _, level := range transcode.Levels() {
		command := "proteus compress " + name
		if level.Name != transcode.DefaultLevel {
			command += " -l " + level.Name
		}
		presets = append(presets, preset{"compress -l " + level.Name, level.Quality, command})
	}

	rows := make([]SizeRow, 0, len(presets))
	for _, pr := range presets {
		size := estimate.Size(v.InputMiB, pr.quality, scale)
		rows = append(rows, SizeRow{
			Setting:     pr.setting,
			Quality:     pr.quality,
			EstimateMiB: size,
			Reduction:   estimate.ReductionPercent(v.InputMiB, size),
			Command:     pr.command + suffix,
		})
	}
	return rows
}

// Sizes prints the estimate table with its header and footer note.
func (p *Presenter) Sizes(v SizesView) {
	p.printf("\n🔱 %s  (%s)\n\n", p.st.bold.Sprint(v.Name), FormatSize(v.InputMiB))

	rows := SizeRows(v)
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Setting,
			strconv.Itoa(row.Quality),
			FormatSize(row.EstimateMiB),
			fmt.Sprintf("-%.0f%%", row.Reduction),
			row.Command,
		})
	}
	p.println(p.renderTable(tableSpec{
		title:   "Estimated Output Sizes",
		headers: []string{"Setting", "CRF", "Est. Size", "Reduction", "Command"},
		rows:    cells,
		aligns:  []columnAlignment{alignLeft, alignCenter, alignRight, alignRight, alignLeft},
		colors:  []text.Colors{{text.FgCyan}, nil, nil, {text.FgGreen}, {text.Faint}},
	}))
	p.println()
	p.println(p.st.dim.Sprint("Note: Estimates are approximate. Actual sizes vary by video content."))
}
