package main

import (
	"github.com/spf13/cobra"

	"proteus/internal/presenter"
	"proteus/internal/services"
	"proteus/internal/transcode"
)

func newCompressCommand(ctx *commandContext) *cobra.Command {
	var (
		output     string
		targetSize int
		level      string
		resolution string
		verbose    bool
		force      bool
		slow       bool
	)

	cmd := &cobra.Command{
		Use:   "compress <input>",
		Short: "Smart compression with presets",
		Long: `Smart compression with presets.

Levels trade quality for size: light, medium (default), heavy, extreme.
The output keeps the input's extension with "_compressed" added to the name.`,
		Example: `  proteus compress video.mp4
  proteus compress video.mp4 -r 1080
  proteus compress video.mp4 -l heavy
  proteus compress video.mp4 -s 50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := transcode.LookupLevel(level)
			if err != nil {
				return err
			}
			if targetSize < 0 {
				return services.Wrap(services.ErrValidation, "", "--size must be a positive number of MB", nil)
			}
			if targetSize > 0 && cmd.Flags().Changed("level") {
				return services.Wrap(services.ErrValidation, "", "use either --level or --size, not both", nil)
			}

			input := args[0]
			if output == "" {
				output = transcode.CompressedOutputPath(input)
			}
			job := encodeJob{
				mode:  presenter.ModeCompress,
				level: selected.Name,
				request: transcode.Request{
					Input:        input,
					Output:       output,
					Quality:      selected.Quality,
					Preset:       selected.Preset,
					AudioBitrate: selected.AudioBitrate,
					Resolution:   resolution,
					Slow:         slow,
					Force:        force,
				},
				verbose: verbose,
			}
			if targetSize > 0 {
				target := float64(targetSize)
				job.pickLevel = func(inputMiB, scale float64) transcode.Level {
					return transcode.LevelForTargetSize(inputMiB, target, scale)
				}
			}
			return ctx.runEncode(cmd, job)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "Output file path (default: <name>_compressed<ext>)")
	flags.IntVarP(&targetSize, "size", "s", 0, "Target size in MB (approximate); picks the lightest level that fits")
	flags.StringVarP(&level, "level", "l", transcode.DefaultLevel, "Compression level: light, medium, heavy, extreme")
	flags.StringVarP(&resolution, "resolution", "r", "", "Scale to resolution (e.g. 1080, 720)")
	flags.BoolVarP(&verbose, "verbose", "V", false, "Show full ffmpeg output")
	flags.BoolVarP(&force, "force", "f", false, "Overwrite output file if it exists")
	flags.BoolVar(&slow, "slow", false, "Use software encoding (~20% smaller, 5-10x slower)")
	return cmd
}
