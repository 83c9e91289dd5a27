package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var sheetBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2).
	Width(80)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <project>",
		Short: "Render a project's info sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := a.projects.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(a.projects.SheetPath(proj.Name))
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Printf("no info sheet for %s; run `seqdat sheet %s` to create one\n",
					proj.Name, proj.Name)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(sheetBorderStyle.Render(string(data)))
			return nil
		},
	}
}
