package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"proteus/internal/logging"
	"proteus/internal/services"
)

// Default source dimensions assumed when no video stream can be read.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Tree is the generic decoded ffprobe report.
type Tree = map[string]any

// Result represents the parsed output from an ffprobe inspection. The zero
// value is the empty result and means "metadata unknown".
type Result struct {
	tree    Tree
	Streams []Stream
	Format  Format
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index         int    `mapstructure:"index"`
	CodecName     string `mapstructure:"codec_name"`
	CodecLongName string `mapstructure:"codec_long_name"`
	CodecType     string `mapstructure:"codec_type"`
	Duration      string `mapstructure:"duration"`
	BitRate       string `mapstructure:"bit_rate"`
	Width         int    `mapstructure:"width"`
	Height        int    `mapstructure:"height"`
	FrameRate     string `mapstructure:"r_frame_rate"`
	SampleRate    string `mapstructure:"sample_rate"`
	Channels      int    `mapstructure:"channels"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename       string `mapstructure:"filename"`
	NBStreams      int    `mapstructure:"nb_streams"`
	Duration       string `mapstructure:"duration"`
	Size           string `mapstructure:"size"`
	BitRate        string `mapstructure:"bit_rate"`
	FormatName     string `mapstructure:"format_name"`
	FormatLongName string `mapstructure:"format_long_name"`
}

// Parse decodes an ffprobe JSON report into a Result.
func Parse(data []byte) (Result, error) {
	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	if tree == nil {
		return Result{}, errors.New("ffprobe parse: empty report")
	}

	result := Result{tree: tree}
	if formatNode, ok := tree["format"]; ok {
		if err := decodeView(formatNode, &result.Format); err != nil {
			return Result{}, fmt.Errorf("ffprobe parse format: %w", err)
		}
	}
	if streamsNode, ok := tree["streams"]; ok {
		if err := decodeView(streamsNode, &result.Streams); err != nil {
			return Result{}, fmt.Errorf("ffprobe parse streams: %w", err)
		}
	}
	return result, nil
}

func decodeView(input any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// Empty reports whether the result carries no metadata.
func (r Result) Empty() bool {
	return len(r.tree) == 0
}

// Tree returns the generic decoded report.
func (r Result) Tree() Tree {
	return r.tree
}

// Lookup walks the tree through nested objects and returns the value at path.
func (r Result) Lookup(path ...string) (any, bool) {
	var node any = r.tree
	for _, key := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return node, node != nil
}

// VideoStream returns the first video stream, if any.
func (r Result) VideoStream() (Stream, bool) {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			return stream, true
		}
	}
	return Stream{}, false
}

// Resolution returns the first video stream's dimensions, defaulting to
// 1920x1080 when no video stream (or no usable size) is known.
func (r Result) Resolution() (int, int) {
	stream, ok := r.VideoStream()
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height := stream.Width, stream.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// DurationSeconds returns the container duration in seconds, or 0 when unavailable.
func (r Result) DurationSeconds() float64 {
	duration := parseFloat(r.Format.Duration)
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0
	}
	return duration
}

// SizeBytes returns the reported container size in bytes, or 0 when unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return int64(size)
}

// BitRate returns the container bitrate in bits per second, or 0 when unavailable.
func (r Result) BitRate() int64 {
	rate := parseFloat(r.Format.BitRate)
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return int64(rate)
}

// FramesPerSecond evaluates an ffprobe "num/den" rate. It returns 0 for a zero
// denominator or an unparsable value.
func (s Stream) FramesPerSecond() float64 {
	rate := strings.TrimSpace(s.FrameRate)
	if rate == "" {
		return 0
	}
	num, den, found := strings.Cut(rate, "/")
	if !found {
		value := parseFloat(num)
		if math.IsNaN(value) {
			return 0
		}
		return value
	}
	n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
	d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if errN != nil || errD != nil || d <= 0 {
		return 0
	}
	return n / d
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}

// Prober runs ffprobe against local files.
type Prober struct {
	binary string
	logger *slog.Logger
}

// NewProber constructs a Prober for the given binary (defaults to "ffprobe").
func NewProber(binary string, logger *slog.Logger) *Prober {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &Prober{binary: binary, logger: logging.NewComponentLogger(logger, "probe")}
}

// Inspect executes ffprobe requesting the container format and every stream.
func (p *Prober) Inspect(ctx context.Context, path string) (Result, error) {
	return p.run(ctx, path, "-show_format", "-show_streams")
}

// InspectFormat executes ffprobe requesting only the container format.
func (p *Prober) InspectFormat(ctx context.Context, path string) (Result, error) {
	return p.run(ctx, path, "-show_format")
}

// Probe is Inspect with failures absorbed into the empty result.
func (p *Prober) Probe(ctx context.Context, path string) Result {
	result, err := p.Inspect(ctx, path)
	if err != nil {
		logging.WithContext(ctx, p.logger).Debug("probe failed; using defaults",
			logging.String("path", path),
			logging.Error(err),
		)
		return Result{}
	}
	return result
}

// Duration returns the container duration in seconds, or 0 on any failure.
func (p *Prober) Duration(ctx context.Context, path string) float64 {
	result, err := p.InspectFormat(ctx, path)
	if err != nil {
		logging.WithContext(ctx, p.logger).Debug("duration probe failed",
			logging.String("path", path),
			logging.Error(err),
		)
		return 0
	}
	return result.DurationSeconds()
}

func (p *Prober) run(ctx context.Context, path string, sections ...string) (Result, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, services.Wrap(services.ErrProbe, "ffprobe", "empty path", nil)
	}

	args := []string{"-v", "quiet", "-print_format", "json"}
	args = append(args, sections...)
	args = append(args, path)

	logging.WithContext(ctx, p.logger).Debug("running ffprobe",
		logging.String("binary", p.binary),
		logging.Strings("args", args),
	)

	cmd := exec.CommandContext(ctx, p.binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		return Result{}, services.Wrap(services.ErrProbe, "ffprobe", detail, err)
	}

	result, err := Parse(output)
	if err != nil {
		return Result{}, services.Wrap(services.ErrProbe, "ffprobe", "", err)
	}
	return result, nil
}
