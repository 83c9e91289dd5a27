package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brocklab/seqdat/internal/domain/project"
)

func newMetaCmd(a *app) *cobra.Command {
	var (
		edit          bool
		owner         string
		runType       string
		updateSamples bool
	)

	cmd := &cobra.Command{
		Use:   "meta <project>",
		Short: "View or update a project's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proj, err := a.projects.Load(ctx, args[0])
			if err != nil {
				return err
			}

			changed := false
			update := project.FieldUpdate{}
			if cmd.Flags().Changed("owner") {
				update.Owner = &owner
				changed = true
			}
			if cmd.Flags().Changed("run-type") {
				update.RunType = &runType
				changed = true
			}

			if edit {
				newOwner, err := a.term.Ask(ctx, "Owner", deref(proj.Owner))
				if err != nil {
					return err
				}
				newRunType, err := a.term.Ask(ctx, "Run Type", deref(proj.RunType))
				if err != nil {
					return err
				}
				update.Owner = &newOwner
				update.RunType = &newRunType
				changed = true
			}

			if updateSamples {
				if err := a.projects.IdentifySamples(ctx, proj); err != nil {
					return err
				}
				changed = true
			}

			if changed {
				outcome, err := a.projects.UpdateFields(ctx, proj, update)
				if err != nil {
					return err
				}
				fmt.Printf("metadata %s\n", outcome)
			}

			printMetadata(proj)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "prompt for new field values")
	cmd.Flags().StringVar(&owner, "owner", "", "set the owner field")
	cmd.Flags().StringVar(&runType, "run-type", "", "set the run type field")
	cmd.Flags().BoolVar(&updateSamples, "update-samples", false, "rescan the raw data and refresh the sample list")
	return cmd
}

func printMetadata(proj *project.Project) {
	fmt.Printf("name: %s\n", proj.Name)
	fmt.Printf("owner: %s\n", orDash(proj.Owner))
	fmt.Printf("run_type: %s\n", orDash(proj.RunType))
	if proj.Samples == nil {
		fmt.Println("samples: (never scanned)")
		return
	}
	fmt.Printf("samples: %d\n", len(proj.Samples))
	for _, s := range proj.Samples {
		fmt.Printf("  - %s\n", s)
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func orDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
