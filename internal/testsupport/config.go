package testsupport

import (
	"path/filepath"
	"testing"

	"proteus/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config rooted in a unique temp directory and
// applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithFFmpegScript installs a stub ffmpeg running body and points the config at it.
func WithFFmpegScript(body string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tools.FFmpeg = WriteScript(b.t, filepath.Join(b.baseDir, "bin"), "ffmpeg", body)
	}
}

// WithFFprobeScript installs a stub ffprobe running body and points the config at it.
func WithFFprobeScript(body string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tools.FFprobe = WriteScript(b.t, filepath.Join(b.baseDir, "bin"), "ffprobe", body)
	}
}

// WithQuality sets the default convert quality.
func WithQuality(quality int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoding.Quality = quality
	}
}

// WithMissingTools points both tool settings at binaries that do not exist.
func WithMissingTools() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tools.FFmpeg = "proteus-test-missing-ffmpeg"
		b.cfg.Tools.FFprobe = "proteus-test-missing-ffprobe"
	}
}
