package config

import "proteus/internal/transcode"

const (
	defaultFFmpegBinary       = "ffmpeg"
	defaultFFprobeBinary      = "ffprobe"
	defaultHWAccel            = "videotoolbox"
	defaultHWEncoder          = "h264_videotoolbox"
	defaultSWEncoder          = "libx264"
	defaultAudioCodec         = "aac"
	defaultExtension          = ".mp4"
	defaultPreset             = "medium"
	defaultAudioBitrate       = "192k"
	defaultCancelGraceSeconds = 5
	defaultRefreshMillis      = 100
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Encoding: Encoding{
			HWAccel:      defaultHWAccel,
			HWEncoder:    defaultHWEncoder,
			SWEncoder:    defaultSWEncoder,
			AudioCodec:   defaultAudioCodec,
			Extension:    defaultExtension,
			Quality:      transcode.DefaultQuality,
			Preset:       defaultPreset,
			AudioBitrate: defaultAudioBitrate,
		},
		Runner: Runner{
			CancelGraceSeconds: defaultCancelGraceSeconds,
			RefreshMillis:      defaultRefreshMillis,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
