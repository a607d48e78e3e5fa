package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"proteus/internal/estimate"
	"proteus/internal/fileutil"
	"proteus/internal/media/ffprobe"
	"proteus/internal/presenter"
	"proteus/internal/services"
	"proteus/internal/transcode"
)

func newSizesCommand(ctx *commandContext) *cobra.Command {
	var resolution string

	cmd := &cobra.Command{
		Use:   "sizes <input>",
		Short: "Preview expected file sizes for different compression settings",
		Long: `Preview expected file sizes for different compression settings.

Shows estimated output sizes without converting, to help choose the right
quality/size tradeoff before committing to a long encode.`,
		Example: "  proteus sizes video.mov\n  proteus sizes video.mov -r 720",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if !fileutil.IsRegular(input) {
				return services.Wrap(services.ErrInputNotFound, "", input, nil)
			}
			inputMiB, err := fileutil.SizeMiB(input)
			if err != nil {
				return services.Wrap(services.ErrInputNotFound, "", input, err)
			}

			cfg, runCtx, logger, err := ctx.scope(cmd)
			if err != nil {
				return err
			}
			view := presenter.SizesView{
				Name:           filepath.Base(input),
				InputMiB:       inputMiB,
				Scale:          1,
				DefaultQuality: cfg.Encoding.Quality,
			}
			if resolution != "" {
				target, err := transcode.ParseResolution(resolution)
				if err != nil {
					return services.Wrap(services.ErrValidation, "", err.Error(), nil)
				}
				_, sourceHeight := ffprobe.NewProber(cfg.Tools.FFprobe, logger).Probe(runCtx, input).Resolution()
				view.Scale = estimate.ResolutionScale(target.Height, sourceHeight)
				view.Resolution = resolution
			}

			presenter.New(cmd.OutOrStdout()).Sizes(view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&resolution, "resolution", "r", "", "Estimate for a target resolution (e.g. 720 or 1280x720)")
	return cmd
}
