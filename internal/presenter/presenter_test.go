package presenter

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"proteus/internal/media/ffprobe"
	"proteus/internal/services"
	"proteus/internal/testsupport"
	"proteus/internal/transcode"
)

func newTestPresenter() (*Presenter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithColor(&buf, false), &buf
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0 MB"},
		{175, "175.0 MB"},
		{999.9, "999.9 MB"},
		{1024, "1.0 GB"},
		{1536, "1.5 GB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatClockAndFrameRate(t *testing.T) {
	if got := FormatClock(185.4); got != "3:05" {
		t.Fatalf("FormatClock = %q", got)
	}
	if got := FormatClock(-1); got != "0:00" {
		t.Fatalf("FormatClock(-1) = %q", got)
	}
	if got := FormatFrameRate(30000.0 / 1001.0); got != "29.97 fps" {
		t.Fatalf("FormatFrameRate = %q", got)
	}
	if got := FormatFrameRate(25); got != "25 fps" {
		t.Fatalf("FormatFrameRate(25) = %q", got)
	}
}

func TestScaledDown(t *testing.T) {
	convert := Invocation{Mode: ModeConvert, Input: "a.mov", Quality: 28, DefaultQuality: 23, Force: true, Slow: true}
	if got := convert.ScaledDown(); got != "proteus convert 'a.mov' -q 28 -r 1080 -f --slow" {
		t.Fatalf("convert ScaledDown = %q", got)
	}
	plain := Invocation{Mode: ModeConvert, Input: "a.mov", Quality: 23, DefaultQuality: 23}
	if got := plain.ScaledDown(); got != "proteus convert 'a.mov' -r 1080" {
		t.Fatalf("plain ScaledDown = %q", got)
	}
	compress := Invocation{Mode: ModeCompress, Input: "a.mov", Quality: 30, Level: "heavy"}
	if got := compress.ScaledDown(); got != "proteus compress 'a.mov' -l heavy -r 1080" {
		t.Fatalf("compress ScaledDown = %q", got)
	}
	medium := Invocation{Mode: ModeCompress, Input: "a.mov", Quality: 26, Level: "medium"}
	if got := medium.ScaledDown(); got != "proteus compress 'a.mov' -r 1080" {
		t.Fatalf("medium ScaledDown = %q", got)
	}
}

func TestCompressFurther(t *testing.T) {
	tests := []struct {
		name   string
		inv    Invocation
		height int
		want   string
	}{
		{
			name:   "convert 4k hardware",
			inv:    Invocation{Mode: ModeConvert, Input: "a.mov"},
			height: 2160,
			want:   "proteus convert 'a.mov' --slow -r 720 -f",
		},
		{
			name:   "compress already scaled",
			inv:    Invocation{Mode: ModeCompress, Input: "a.mov", Level: "medium", Resolution: "720", Slow: true},
			height: 2160,
			want:   "proteus compress 'a.mov' -r 480 -l heavy -f",
		},
		{
			name:   "explicit size keeps source height",
			inv:    Invocation{Mode: ModeConvert, Input: "a.mov", Resolution: "1280x720", Slow: true},
			height: 1080,
			want:   "proteus convert 'a.mov' -r 720 -f",
		},
		{
			name:   "nothing left",
			inv:    Invocation{Mode: ModeCompress, Input: "a.mov", Level: "extreme", Slow: true},
			height: 480,
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.CompressFurther(tt.height); got != tt.want {
				t.Fatalf("CompressFurther = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlanHardwareLargeSource(t *testing.T) {
	p, buf := newTestPresenter()
	p.Plan(PlanView{
		Input:        "/videos/a.mov",
		Output:       "/videos/a.mp4",
		InputMiB:     500,
		EstimateMiB:  175,
		Hardware:     true,
		Quality:      23,
		SourceWidth:  3840,
		SourceHeight: 2160,
		Invocation:   Invocation{Mode: ModeConvert, Input: "/videos/a.mov", Quality: 23, DefaultQuality: 23},
	})
	out := buf.String()
	for _, want := range []string{
		"a.mov → a.mp4",
		"500.0 MB → ~175.0 MB estimated  (⚡ hardware)",
		"Add --slow for ~20% smaller files",
		"Video is 3840x2160",
		"proteus convert '/videos/a.mov' -r 1080",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("plan output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanSoftwareWithResolution(t *testing.T) {
	p, buf := newTestPresenter()
	p.Plan(PlanView{
		Input:        "a.mov",
		Output:       "a.mp4",
		InputMiB:     100,
		EstimateMiB:  18,
		Quality:      28,
		SourceWidth:  3840,
		SourceHeight: 2160,
		Invocation:   Invocation{Mode: ModeConvert, Input: "a.mov", Resolution: "720", Slow: true},
	})
	out := buf.String()
	if !strings.Contains(out, "(CRF 28, slow)") || !strings.Contains(out, "Omit --slow") {
		t.Fatalf("unexpected software plan:\n%s", out)
	}
	if strings.Contains(out, "Video is") {
		t.Fatalf("resolution hint must be skipped when -r is set:\n%s", out)
	}
}

func TestPlanSuggestsMatchingCompressLevel(t *testing.T) {
	p, buf := newTestPresenter()
	p.Plan(PlanView{
		Input:        "a.mov",
		Output:       "a.mp4",
		InputMiB:     100,
		EstimateMiB:  24,
		Quality:      26,
		SourceWidth:  1280,
		SourceHeight: 720,
		Invocation:   Invocation{Mode: ModeConvert, Input: "a.mov", Quality: 26, DefaultQuality: 23, Slow: true},
	})
	out := buf.String()
	if !strings.Contains(out, "-q 26 is the medium compress level") || !strings.Contains(out, "proteus compress 'a.mov' --slow") {
		t.Fatalf("missing level suggestion:\n%s", out)
	}

	buf.Reset()
	p.Plan(PlanView{
		Input:      "a.mov",
		Output:     "a.mp4",
		Quality:    23,
		Invocation: Invocation{Mode: ModeConvert, Input: "a.mov", Quality: 23, DefaultQuality: 23},
	})
	if strings.Contains(buf.String(), "compress level") {
		t.Fatalf("no level uses quality 23:\n%s", buf.String())
	}
}

func TestMatchingLevel(t *testing.T) {
	inv := Invocation{Mode: ModeConvert, Input: "a.mov", Quality: 35, Resolution: "720"}
	level, command := inv.MatchingLevel()
	if level.Name != "extreme" || command != "proteus compress 'a.mov' -l extreme -r 720" {
		t.Fatalf("MatchingLevel = %q, %q", level.Name, command)
	}
	if _, command := (Invocation{Mode: ModeCompress, Input: "a.mov", Quality: 30}).MatchingLevel(); command != "" {
		t.Fatalf("compress runs need no suggestion, got %q", command)
	}
}

func TestDone(t *testing.T) {
	p, buf := newTestPresenter()
	p.Done(500, 150)
	if got := buf.String(); !strings.Contains(got, "500.0 MB → 150.0 MB  3.3x smaller  (saved 350.0 MB)") {
		t.Fatalf("Done = %q", got)
	}

	buf.Reset()
	p.Done(100, 120)
	if got := buf.String(); got != "✓ Done  100.0 MB → 120.0 MB\n" {
		t.Fatalf("Done (larger) = %q", got)
	}
}

func TestFailedAndErrors(t *testing.T) {
	p, buf := newTestPresenter()
	p.Failed()
	if got := buf.String(); got != "✗ Failed — run with --verbose to see details\n" {
		t.Fatalf("Failed = %q", got)
	}

	buf.Reset()
	p.Error(&transcode.OutputExistsError{Path: "out.mp4"})
	if got := buf.String(); !strings.Contains(got, "already exists: out.mp4") || !strings.Contains(got, "Use --force or -f") {
		t.Fatalf("output exists message = %q", got)
	}

	buf.Reset()
	p.Error(services.Wrap(services.ErrInterrupted, "transcode", "encode cancelled", errors.New("context canceled")))
	if !strings.Contains(buf.String(), "Interrupted") {
		t.Fatalf("interrupt message = %q", buf.String())
	}

	buf.Reset()
	p.Error(services.Wrap(services.ErrProbe, "", "boom", nil))
	if buf.String() != "Error: probe failed: boom\n" {
		t.Fatalf("classified error = %q", buf.String())
	}

	buf.Reset()
	p.Error(errors.New(`unknown flag: --bogus`))
	if buf.String() != "Error: unknown flag: --bogus\n  Run 'proteus --help' for usage.\n" {
		t.Fatalf("unclassified error = %q", buf.String())
	}
}

func TestTip(t *testing.T) {
	p, buf := newTestPresenter()
	p.pick = func(int) int { return 2 }
	p.Tip()
	if got := buf.String(); got != "Tip: Use proteus convert video.mov -r 720 to scale to 720p\n" {
		t.Fatalf("Tip = %q", got)
	}
}

func TestInfoRows(t *testing.T) {
	result, err := ffprobe.Parse([]byte(testsupport.SampleReport))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows := InfoRows(result)
	got := make(map[string]string, len(rows))
	for _, row := range rows {
		got[row[0]] = row[1]
	}
	want := map[string]string{
		"Size":        "500.0 MB",
		"Duration":    "3:00",
		"Format":      "QuickTime / MOV",
		"Video Codec": "hevc",
		"Resolution":  "3840x2160",
		"Frame Rate":  "29.97 fps",
		"Audio Codec": "aac",
		"Sample Rate": "48000 Hz",
		"Channels":    "2",
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("%s = %q, want %q", key, got[key], value)
		}
	}
	if !strings.Contains(got["Bit Rate"], "b/s") {
		t.Errorf("Bit Rate = %q", got["Bit Rate"])
	}
	if rows[0][0] != "Size" || rows[1][0] != "Duration" || rows[2][0] != "Format" {
		t.Fatalf("container rows must come first: %v", rows[:3])
	}
}

func TestInfoRowsEmptyResult(t *testing.T) {
	rows := InfoRows(ffprobe.Result{})
	if len(rows) != 3 || rows[2][1] != "Unknown" || rows[1][1] != "0:00" {
		t.Fatalf("unexpected rows for empty result: %v", rows)
	}
}

func TestInfoRowsFormatFromTree(t *testing.T) {
	result, err := ffprobe.Parse([]byte(`{"format":{"format_name":"mov","size":"1048576"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rows := InfoRows(result); rows[2][1] != "Unknown" {
		t.Fatalf("format without long name = %q", rows[2][1])
	}

	result, err = ffprobe.Parse([]byte(`{"format":{"format_long_name":"QuickTime / MOV"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rows := InfoRows(result); rows[2][1] != "QuickTime / MOV" {
		t.Fatalf("format = %q", rows[2][1])
	}
}

func TestInfoTable(t *testing.T) {
	result, err := ffprobe.Parse([]byte(testsupport.SampleReport))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, buf := newTestPresenter()
	p.Info("clip.mov", result)
	out := buf.String()
	if !strings.Contains(out, "clip.mov") || !strings.Contains(out, "Video Codec") || !strings.Contains(out, "hevc") {
		t.Fatalf("info table:\n%s", out)
	}
}

func TestSizeRowsDefaultQuality(t *testing.T) {
	rows := SizeRows(SizesView{Name: "a.mov", InputMiB: 100, Scale: 1, DefaultQuality: 25})
	if rows[1].Quality != 25 || rows[1].Command != "proteus convert a.mov" {
		t.Fatalf("default row = %+v", rows[1])
	}
	if rows := SizeRows(SizesView{Name: "a.mov", InputMiB: 100}); rows[1].Quality != transcode.DefaultQuality {
		t.Fatalf("unset default quality = %d", rows[1].Quality)
	}
}

func TestSizeRows(t *testing.T) {
	rows := SizeRows(SizesView{Name: "short.mov", InputMiB: 500, Scale: 1})
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	wantCommands := []string{
		"proteus convert short.mov -q 18",
		"proteus convert short.mov",
		"proteus convert short.mov -q 28",
		"proteus compress short.mov -l light",
		"proteus compress short.mov",
		"proteus compress short.mov -l heavy",
		"proteus compress short.mov -l extreme",
	}
	wantQuality := []int{18, 23, 28, 20, 26, 30, 35}
	for i, row := range rows {
		if row.Command != wantCommands[i] || row.Quality != wantQuality[i] {
			t.Errorf("row %d = %+v", i, row)
		}
	}
	if math.Abs(rows[1].EstimateMiB-175) > 1e-6 || math.Abs(rows[1].Reduction-65) > 1e-6 {
		t.Fatalf("default row = %+v", rows[1])
	}
}

func TestSizeRowsShortensNameAndScales(t *testing.T) {
	rows := SizeRows(SizesView{Name: "a-very-long-file-name.mov", InputMiB: 500, Scale: 0.5, Resolution: "720"})
	if rows[1].Command != "proteus convert video.mp4 -r 720" {
		t.Fatalf("command = %q", rows[1].Command)
	}
	if math.Abs(rows[1].EstimateMiB-43.75) > 1e-6 {
		t.Fatalf("scaled estimate = %v", rows[1].EstimateMiB)
	}
}

func TestSizesTable(t *testing.T) {
	p, buf := newTestPresenter()
	p.Sizes(SizesView{Name: "short.mov", InputMiB: 500, Scale: 1})
	out := buf.String()
	for _, want := range []string{"short.mov  (500.0 MB)", "Estimated Output Sizes", "Good quality (default)", "175.0 MB", "-65%", "Estimates are approximate"} {
		if !strings.Contains(out, want) {
			t.Fatalf("sizes output missing %q:\n%s", want, out)
		}
	}
}

func TestFormats(t *testing.T) {
	p, buf := newTestPresenter()
	p.Formats()
	out := buf.String()
	if !strings.Contains(out, "Format Cheatsheet") || !strings.Contains(out, "proteus convert video.mov --no-audio") {
		t.Fatalf("cheatsheet:\n%s", out)
	}
}

func TestMarkdownPlainHasNoEscapes(t *testing.T) {
	p, buf := newTestPresenter()
	if err := p.Markdown("# Title\n\nSome **bold** text.\n\n```\nproteus convert a.mov\n```\n\n- use `-f` to overwrite\n"); err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Title", "bold", "proteus convert a.mov", "-f to overwrite"} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain markdown carries escapes: %q", out)
	}
}

func TestMarkdownColorized(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithColor(&buf, true)
	if err := p.Markdown("# Title\n\nuse `proteus docs`\n"); err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI codes, got %q", buf.String())
	}
}

func TestColorizedOutputCarriesEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithColor(&buf, true)
	p.Failed()
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI codes, got %q", buf.String())
	}
	if ShouldColorize(&buf) {
		t.Fatal("a buffer is never a terminal")
	}
}

func TestProgressBar(t *testing.T) {
	p, buf := newTestPresenter()
	bar := p.ProgressBar("Converting")
	bar.Update(50)
	bar.Finish(true)
	if !strings.Contains(buf.String(), "Converting") {
		t.Fatalf("bar output = %q", buf.String())
	}
}
