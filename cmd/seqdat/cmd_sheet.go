package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSheetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sheet <project>",
		Short: "Regenerate a project's info sheet header",
		Long: `Regenerate the info sheet header from current metadata. Everything from
the "## Additional Info" line down is preserved verbatim; an existing sheet is
only replaced after confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proj, err := a.projects.Load(ctx, args[0])
			if err != nil {
				return err
			}
			outcome, err := a.projects.WriteInfoSheet(ctx, proj)
			if err != nil {
				return err
			}
			fmt.Printf("info sheet %s\n", outcome)
			return nil
		},
	}
}
