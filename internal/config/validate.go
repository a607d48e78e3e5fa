package config

import (
	"errors"
	"fmt"
	"strings"

	"proteus/internal/transcode"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateEncoding(); err != nil {
		return err
	}
	if err := c.validateRunner(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must be set")
	}
	if c.Tools.FFprobe == "" {
		return errors.New("tools.ffprobe must be set")
	}
	return nil
}

func (c *Config) validateEncoding() error {
	enc := c.Encoding
	if enc.HWAccel == "" || enc.HWEncoder == "" {
		return errors.New("encoding.hwaccel and encoding.hw_encoder must be set")
	}
	if enc.SWEncoder == "" {
		return errors.New("encoding.sw_encoder must be set")
	}
	if enc.AudioCodec == "" {
		return errors.New("encoding.audio_codec must be set")
	}
	if !strings.HasPrefix(enc.Extension, ".") || len(enc.Extension) < 2 {
		return fmt.Errorf("encoding.extension must start with a dot, got %q", enc.Extension)
	}
	if enc.Quality < transcode.MinQuality || enc.Quality > transcode.MaxQuality {
		return fmt.Errorf("encoding.quality must be between %d and %d", transcode.MinQuality, transcode.MaxQuality)
	}
	if !transcode.IsPreset(enc.Preset) {
		return fmt.Errorf("encoding.preset must be one of %s", strings.Join(transcode.Presets(), ", "))
	}
	return nil
}

func (c *Config) validateRunner() error {
	if c.Runner.CancelGraceSeconds < 1 {
		return fmt.Errorf("runner.cancel_grace_seconds must be at least 1, got %d", c.Runner.CancelGraceSeconds)
	}
	if c.Runner.RefreshMillis < 1 {
		return fmt.Errorf("runner.refresh_millis must be at least 1, got %d", c.Runner.RefreshMillis)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
