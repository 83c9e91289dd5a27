package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		name         string
		owner        string
		runType      string
		skipDownload bool
		bsParams     string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively generate a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var err error
			if name, err = a.term.Ask(ctx, "Name", name); err != nil {
				return err
			}
			defaultOwner := owner
			if defaultOwner == "" {
				defaultOwner = a.cfg.User
			}
			if owner, err = a.term.Ask(ctx, "Owner", defaultOwner); err != nil {
				return err
			}
			if runType, err = a.term.Ask(ctx, "Run Type", runType); err != nil {
				return err
			}

			proj, err := a.projects.Create(ctx, name, owner, runType)
			if err != nil {
				return err
			}

			if a.projects.Exists(proj.Name) {
				fmt.Printf("project %s already exists\n", proj.Name)
				answer, err := a.term.Ask(ctx, "Proceed with initialization? [y/N]", "n")
				if err != nil {
					return err
				}
				if !isYes(answer) {
					return nil
				}
			}

			if !skipDownload {
				if err := a.downloader.Download(ctx, a.cfg.Database, proj.Name, strings.Fields(bsParams)); err != nil {
					return err
				}
			}

			if err := a.projects.IdentifySamples(ctx, proj); err != nil {
				return err
			}
			if _, err := a.projects.SaveMetadata(ctx, proj); err != nil {
				return err
			}
			outcome, err := a.projects.WriteInfoSheet(ctx, proj)
			if err != nil {
				return err
			}

			fmt.Printf("project %s initialized (%d samples, info sheet %s)\n",
				proj.Name, len(proj.Samples), outcome)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name/id of the sequencing project")
	cmd.Flags().StringVarP(&owner, "owner", "o", "", "user who submitted the sequencing job")
	cmd.Flags().StringVarP(&runType, "run-type", "r", "", "sequencer/kit used for the job")
	cmd.Flags().BoolVar(&skipDownload, "skip-download", false, "do not fetch raw data from BaseSpace")
	cmd.Flags().StringVar(&bsParams, "bs-params", "", "extra parameters passed to bs project download")
	return cmd
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
