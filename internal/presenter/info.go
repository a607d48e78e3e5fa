package presenter

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"proteus/internal/media/ffprobe"
)

const bytesPerMiB = 1024 * 1024

// InfoRows flattens a probe result into property/value pairs: container facts
// first, then each video and audio stream in order.
func InfoRows(r ffprobe.Result) [][]string {
	rows := [][]string{
		{"Size", fmt.Sprintf("%.1f MB", float64(r.SizeBytes())/bytesPerMiB)},
		{"Duration", FormatClock(r.DurationSeconds())},
		{"Format", lookupString(r, "Unknown", "format", "format_long_name")},
	}
	if bitRate := r.BitRate(); bitRate > 0 {
		rows = append(rows, []string{"Bit Rate", humanize.SIWithDigits(float64(bitRate), 1, "b/s")})
	}

	titleCase := cases.Title(language.English)
	for _, stream := range r.Streams {
		kind := titleCase.String(stream.CodecType)
		switch stream.CodecType {
		case "video":
			rows = append(rows,
				[]string{kind + " Codec", orDefault(stream.CodecName, "?")},
				[]string{"Resolution", dimension(stream.Width) + "x" + dimension(stream.Height)},
				[]string{"Frame Rate", FormatFrameRate(stream.FramesPerSecond())},
			)
		case "audio":
			channels := "?"
			if stream.Channels > 0 {
				channels = strconv.Itoa(stream.Channels)
			}
			rows = append(rows,
				[]string{kind + " Codec", orDefault(stream.CodecName, "?")},
				[]string{"Sample Rate", orDefault(stream.SampleRate, "?") + " Hz"},
				[]string{"Channels", channels},
			)
		}
	}
	return rows
}

// Info prints the property table for a probed file.
func (p *Presenter) Info(name string, r ffprobe.Result) {
	p.println(p.renderTable(tableSpec{
		title:   "🎬 " + name,
		headers: []string{"Property", "Value"},
		rows:    InfoRows(r),
		colors:  []text.Colors{{text.FgCyan}, {text.FgWhite}},
	}))
}

func dimension(v int) string {
	if v <= 0 {
		return "?"
	}
	return strconv.Itoa(v)
}

// lookupString reads a string leaf from the raw report tree.
func lookupString(r ffprobe.Result, fallback string, path ...string) string {
	value, ok := r.Lookup(path...)
	if !ok {
		return fallback
	}
	text, ok := value.(string)
	if !ok {
		return fallback
	}
	return orDefault(text, fallback)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
