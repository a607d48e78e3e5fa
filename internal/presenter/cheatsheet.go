package presenter

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

var conversions = []struct {
	title   string
	command string
}{
	{".mov → .mp4", "proteus convert video.mov"},
	{".avi → .mp4", "proteus convert video.avi"},
	{".mkv → .mp4", "proteus convert video.mkv"},
	{"Any → .mp4 (small)", "proteus convert video.mov -q 28"},
	{"Any → .mp4 (720p)", "proteus convert video.mov -r 720"},
	{"Remove audio", "proteus convert video.mov --no-audio"},
}

// Formats prints the common conversions cheatsheet panel.
func (p *Presenter) Formats() {
	var b strings.Builder
	b.WriteString(p.st.accent.Sprint("Common Conversions"))
	for _, c := range conversions {
		b.WriteString("\n\n")
		b.WriteString(p.st.bold.Sprint(c.title))
		b.WriteString("\n  ")
		b.WriteString(c.command)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("🔱 Format Cheatsheet")
	tw.AppendRow(table.Row{b.String()})
	p.println(tw.Render())
}
