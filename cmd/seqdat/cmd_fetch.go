package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newFetchCmd(a *app) *cobra.Command {
	var bsParams string

	cmd := &cobra.Command{
		Use:   "fetch <project>",
		Short: "Download a project's raw data from BaseSpace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.downloader.Download(cmd.Context(), a.cfg.Database, args[0], strings.Fields(bsParams))
		},
	}

	cmd.Flags().StringVar(&bsParams, "bs-params", "", "extra parameters passed to bs project download")
	return cmd
}
