package main

import (
	"github.com/spf13/cobra"

	"proteus/internal/docs"
	"proteus/internal/presenter"
)

func newDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "docs",
		Short:       "Show documentation in the terminal",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return presenter.New(cmd.OutOrStdout()).Markdown(docs.Guide())
		},
	}
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "Show common format conversion examples",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter.New(cmd.OutOrStdout()).Formats()
			return nil
		},
	}
}
