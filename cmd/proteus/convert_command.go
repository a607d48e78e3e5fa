package main

import (
	"github.com/spf13/cobra"

	"proteus/internal/config"
	"proteus/internal/presenter"
	"proteus/internal/transcode"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	defaults := config.Default().Encoding
	var (
		output     string
		quality    int
		preset     string
		audio      string
		resolution string
		noAudio    bool
		verbose    bool
		force      bool
		slow       bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert video to MP4 (H.264)",
		Long: `Convert video to MP4 (H.264).

Hardware encoding is used by default. --slow switches to software encoding,
which is 5-10x slower but produces files about 20% smaller.`,
		Example: `  proteus convert video.mov
  proteus convert video.mov --slow
  proteus convert video.mov -q 28
  proteus convert video.mov -r 720`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("quality") {
				quality = cfg.Encoding.Quality
			}
			if !flags.Changed("preset") {
				preset = cfg.Encoding.Preset
			}
			if !flags.Changed("audio") {
				audio = cfg.Encoding.AudioBitrate
			}
			return ctx.runEncode(cmd, encodeJob{
				mode: presenter.ModeConvert,
				request: transcode.Request{
					Input:        args[0],
					Output:       output,
					Quality:      quality,
					Preset:       preset,
					AudioBitrate: audio,
					NoAudio:      noAudio,
					Resolution:   resolution,
					Slow:         slow,
					Force:        force,
				},
				verbose: verbose,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "Output file path (default: input name with .mp4)")
	flags.IntVarP(&quality, "quality", "q", defaults.Quality, "Quality (CRF): 18=high, 23=medium, 28=low/small; lower is better and bigger")
	flags.StringVarP(&preset, "preset", "p", defaults.Preset, "Encoding speed with --slow: ultrafast, superfast, veryfast, faster, fast, medium, slow, slower, veryslow")
	flags.StringVarP(&audio, "audio", "a", defaults.AudioBitrate, "Audio bitrate (e.g. 128k, 192k, 320k)")
	flags.StringVarP(&resolution, "resolution", "r", "", "Scale to resolution (e.g. 1920x1080, or a height such as 720)")
	flags.BoolVar(&noAudio, "no-audio", false, "Remove audio track")
	flags.BoolVarP(&verbose, "verbose", "V", false, "Show full ffmpeg output")
	flags.BoolVarP(&force, "force", "f", false, "Overwrite output file if it exists")
	flags.BoolVar(&slow, "slow", false, "Use software encoding (slower but ~20% smaller files)")
	return cmd
}
