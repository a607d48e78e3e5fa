package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Tools names the external binaries proteus drives.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Encoding holds the codec choices and the defaults applied to `convert`.
type Encoding struct {
	HWAccel      string `toml:"hwaccel"`
	HWEncoder    string `toml:"hw_encoder"`
	SWEncoder    string `toml:"sw_encoder"`
	AudioCodec   string `toml:"audio_codec"`
	Extension    string `toml:"extension"`
	Quality      int    `toml:"quality"`
	Preset       string `toml:"preset"`
	AudioBitrate string `toml:"audio_bitrate"`
}

// Runner controls child-process supervision.
type Runner struct {
	// CancelGraceSeconds is how long an interrupted child gets to exit after
	// SIGTERM before it is killed.
	CancelGraceSeconds int `toml:"cancel_grace_seconds"`
	// RefreshMillis throttles progress indicator redraws.
	RefreshMillis int `toml:"refresh_millis"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for proteus.
type Config struct {
	Tools    Tools    `toml:"tools"`
	Encoding Encoding `toml:"encoding"`
	Runner   Runner   `toml:"runner"`
	Logging  Logging  `toml:"logging"`
}

// Load returns the default configuration, overlaid with the TOML file at path
// when path is non-empty. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		resolved, err := ExpandPath(path)
		if err != nil {
			return nil, err
		}
		file, err := os.Open(resolved)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found", resolved)
			}
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// CancelGrace returns the SIGTERM-to-SIGKILL window for interrupted children.
func (c *Config) CancelGrace() time.Duration {
	return time.Duration(c.Runner.CancelGraceSeconds) * time.Second
}

// RefreshInterval returns the minimum delay between progress redraws.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Runner.RefreshMillis) * time.Millisecond
}

func (c *Config) normalize() {
	defaults := Default()
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	c.Encoding.HWAccel = strings.TrimSpace(c.Encoding.HWAccel)
	c.Encoding.HWEncoder = strings.TrimSpace(c.Encoding.HWEncoder)
	c.Encoding.SWEncoder = strings.TrimSpace(c.Encoding.SWEncoder)
	c.Encoding.AudioCodec = strings.TrimSpace(c.Encoding.AudioCodec)
	c.Encoding.Extension = strings.TrimSpace(c.Encoding.Extension)
	c.Encoding.Preset = strings.ToLower(strings.TrimSpace(c.Encoding.Preset))
	c.Encoding.AudioBitrate = strings.TrimSpace(c.Encoding.AudioBitrate)
	if c.Encoding.Preset == "" {
		c.Encoding.Preset = defaults.Encoding.Preset
	}
	if c.Encoding.AudioBitrate == "" {
		c.Encoding.AudioBitrate = defaults.Encoding.AudioBitrate
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// ExpandPath resolves tilde shortcuts and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return pathValue, nil
	}
	expanded, err := homedir.Expand(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	absolute, err := filepath.Abs(filepath.Clean(expanded))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", expanded, err)
	}
	return absolute, nil
}
