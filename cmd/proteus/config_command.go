package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proteus/internal/config"
	"proteus/internal/deps"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and report whether ffmpeg and ffprobe are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			source := flagValue(ctx.configFlag)
			if source == "" {
				source = "built-in defaults"
			}
			fmt.Fprintf(out, "Configuration valid (%s)\n", source)

			missing := false
			for _, status := range deps.CheckBinaries(toolRequirements(cfg)) {
				if status.Available {
					fmt.Fprintf(out, "  ✓ %-8s %s\n", status.Name, status.Path)
					continue
				}
				label := "required"
				if status.Optional {
					label = "optional"
				} else {
					missing = true
				}
				fmt.Fprintf(out, "  ✗ %-8s %s (%s: %s)\n", status.Name, status.Detail, label, status.Description)
			}
			if missing {
				fmt.Fprintln(out, "  "+deps.InstallHint)
			}
			return nil
		},
	})

	return configCmd
}

func toolRequirements(cfg *config.Config) []deps.Requirement {
	return []deps.Requirement{
		{Name: "ffmpeg", Command: cfg.Tools.FFmpeg, Description: "encodes every convert and compress run"},
		{Name: "ffprobe", Command: cfg.Tools.FFprobe, Description: "reads duration and resolution; info needs it", Optional: true},
	}
}
