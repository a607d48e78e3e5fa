package presenter

// tips are shown one at a time before a non-verbose encode.
var tips = []struct {
	text    string
	command string
}{
	{"for smaller files", "proteus compress video.mp4 -l heavy"},
	{"for max compression", "proteus compress video.mp4 -l extreme"},
	{"to scale to 720p", "proteus convert video.mov -r 720"},
	{"to remove audio", "proteus convert video.mov --no-audio"},
	{"to preview all compression options", "proteus sizes video.mp4"},
	{"to inspect codec & resolution", "proteus info video.mp4"},
	{"to view full documentation", "proteus docs"},
}

// Tip prints one randomly chosen usage tip.
func (p *Presenter) Tip() {
	tip := tips[p.pick(len(tips))]
	p.println(p.st.dim.Sprint("Tip: Use ") + p.st.cyan.Sprint(tip.command) + p.st.dim.Sprint(" "+tip.text))
}
