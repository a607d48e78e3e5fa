package ffprobe

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"proteus/internal/logging"
	"proteus/internal/services"
	"proteus/internal/testsupport"
)

func TestParseSampleReport(t *testing.T) {
	result, err := Parse([]byte(testsupport.SampleReport))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.Empty() {
		t.Fatal("expected non-empty result")
	}
	if len(result.Streams) != 2 {
		t.Fatalf("streams = %d, want 2", len(result.Streams))
	}
	if got := result.DurationSeconds(); got != 180 {
		t.Fatalf("DurationSeconds = %v", got)
	}
	if got := result.SizeBytes(); got != 524288000 {
		t.Fatalf("SizeBytes = %d", got)
	}
	if got := result.BitRate(); got != 23301801 {
		t.Fatalf("BitRate = %d", got)
	}
	if w, h := result.Resolution(); w != 3840 || h != 2160 {
		t.Fatalf("Resolution = %dx%d", w, h)
	}
	if result.Format.FormatLongName != "QuickTime / MOV" {
		t.Fatalf("FormatLongName = %q", result.Format.FormatLongName)
	}
	audio := result.Streams[1]
	if audio.SampleRate != "48000" || audio.Channels != 2 || audio.CodecName != "aac" {
		t.Fatalf("unexpected audio stream %+v", audio)
	}
	video, ok := result.VideoStream()
	if !ok {
		t.Fatal("expected video stream")
	}
	if fps := video.FramesPerSecond(); fps < 29.97 || fps > 29.98 {
		t.Fatalf("FramesPerSecond = %v", fps)
	}
}

func TestLookupWalksTree(t *testing.T) {
	result, err := Parse([]byte(testsupport.SampleReport))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	value, ok := result.Lookup("format", "format_long_name")
	if !ok || value != "QuickTime / MOV" {
		t.Fatalf("Lookup = %v %v", value, ok)
	}
	if _, ok := result.Lookup("format", "missing"); ok {
		t.Fatal("expected missing key to report false")
	}
	if _, ok := result.Lookup("streams", "0"); ok {
		t.Fatal("expected lookup through an array to fail")
	}
}

func TestEmptyResultDefaults(t *testing.T) {
	var result Result
	if !result.Empty() {
		t.Fatal("zero result should be empty")
	}
	if w, h := result.Resolution(); w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("Resolution = %dx%d", w, h)
	}
	if result.DurationSeconds() != 0 {
		t.Fatalf("DurationSeconds = %v", result.DurationSeconds())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Format: Format{
			Duration: "bad",
			Size:     "-1",
			BitRate:  "nope",
		},
	}
	if result.DurationSeconds() != 0 {
		t.Fatalf("expected duration 0, got %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 0 {
		t.Fatalf("expected size 0, got %d", result.SizeBytes())
	}
	if result.BitRate() != 0 {
		t.Fatalf("expected bitrate 0, got %d", result.BitRate())
	}
}

func TestFramesPerSecond(t *testing.T) {
	cases := map[string]float64{
		"25/1":  25,
		"0/0":   0,
		"24":    24,
		"":      0,
		"abc/1": 0,
	}
	for rate, want := range cases {
		if got := (Stream{FrameRate: rate}).FramesPerSecond(); got != want {
			t.Fatalf("FramesPerSecond(%q) = %v, want %v", rate, got, want)
		}
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Parse([]byte("null")); err == nil {
		t.Fatal("expected error for null report")
	}
}

func TestProberInspect(t *testing.T) {
	dir := t.TempDir()
	bin := testsupport.WriteScript(t, dir, "ffprobe", testsupport.FFprobeBody(testsupport.SampleReport, 0))
	prober := NewProber(bin, logging.NewNop())

	result, err := prober.Inspect(context.Background(), filepath.Join(dir, "clip.mov"))
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if result.DurationSeconds() != 180 {
		t.Fatalf("DurationSeconds = %v", result.DurationSeconds())
	}
	if got := prober.Duration(context.Background(), "clip.mov"); got != 180 {
		t.Fatalf("Duration = %v", got)
	}
}

func TestProberAbsorbsFailures(t *testing.T) {
	dir := t.TempDir()
	failing := testsupport.WriteScript(t, dir, "ffprobe-fail", "exit 1\n")
	garbage := testsupport.WriteScript(t, dir, "ffprobe-garbage", "echo '{not json'\n")

	for name, bin := range map[string]string{
		"missing":   filepath.Join(dir, "does-not-exist"),
		"exit code": failing,
		"malformed": garbage,
	} {
		t.Run(name, func(t *testing.T) {
			prober := NewProber(bin, logging.NewNop())
			if result := prober.Probe(context.Background(), "clip.mov"); !result.Empty() {
				t.Fatalf("expected empty result, got %+v", result)
			}
			if got := prober.Duration(context.Background(), "clip.mov"); got != 0 {
				t.Fatalf("Duration = %v", got)
			}
			_, err := prober.Inspect(context.Background(), "clip.mov")
			if !errors.Is(err, services.ErrProbe) {
				t.Fatalf("expected ErrProbe, got %v", err)
			}
		})
	}
}

func TestProberRejectsEmptyPath(t *testing.T) {
	prober := NewProber("", nil)
	if _, err := prober.Inspect(context.Background(), " "); !errors.Is(err, services.ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
}
