package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brocklab/seqdat/internal/domain/project"
)

func newMvCmd(a *app) *cobra.Command {
	var req project.ConsolidateRequest

	cmd := &cobra.Command{
		Use:   "mv <project>",
		Short: "Concatenate and move raw data into an output directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proj, err := a.projects.Load(ctx, args[0])
			if err != nil {
				return err
			}

			report, runErr := a.projects.Consolidate(ctx, proj, req)
			if report == nil {
				return runErr
			}

			for _, res := range report.Results {
				if len(res.Outputs) == 0 {
					fmt.Printf("%s: failed\n", res.Sample)
					continue
				}
				fmt.Printf("%s: %d files, %d bytes\n", res.Sample, res.Files, res.Bytes)
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&req.OutDir, "out", "o", "", "directory to transfer data to (must not exist)")
	cmd.Flags().StringVar(&req.Prefix, "prefix", "", "prefix added to output file names")
	cmd.Flags().StringVar(&req.Suffix, "suffix", ".raw", "suffix (before the extension) added to output file names")
	cmd.Flags().BoolVar(&req.PairedEnd, "paired-end", false, "concatenate R1/R2 reads separately")
	cmd.Flags().IntVar(&req.Workers, "workers", 1, "samples consolidated in parallel")
	cmd.MarkFlagRequired("out")
	return cmd
}
