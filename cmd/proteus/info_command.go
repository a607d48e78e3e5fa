package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"proteus/internal/deps"
	"proteus/internal/fileutil"
	"proteus/internal/media/ffprobe"
	"proteus/internal/presenter"
	"proteus/internal/services"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "info <input>",
		Short:   "Show video file information",
		Example: "  proteus info video.mov\n  proteus info video.mov --output json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case "table", "json", "yaml":
			default:
				return services.Wrap(services.ErrValidation, "", fmt.Sprintf("unknown output format %q; use table, json or yaml", format), nil)
			}

			input := args[0]
			if !fileutil.IsRegular(input) {
				return services.Wrap(services.ErrInputNotFound, "", input, nil)
			}
			cfg, runCtx, logger, err := ctx.scope(cmd)
			if err != nil {
				return err
			}
			if _, err := deps.Require("ffprobe", cfg.Tools.FFprobe); err != nil {
				return err
			}

			result, err := ffprobe.NewProber(cfg.Tools.FFprobe, logger).Inspect(runCtx, input)
			if err != nil || result.Empty() {
				return services.Wrap(services.ErrProbe, "", "Could not read video info. Is ffprobe installed?", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(result.Tree(), "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(result.Tree())
				if err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				fmt.Fprint(out, string(data))
			default:
				presenter.New(out).Info(filepath.Base(input), result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "output", "table", "Output format: table, json or yaml")
	return cmd
}
