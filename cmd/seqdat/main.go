// Command seqdat manages sequencing-run outputs as per-project directory
// records. It is the interactive surface over the non-interactive core: all
// prompting, confirmation and printing happens here.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brocklab/seqdat/internal/basespace"
	"github.com/brocklab/seqdat/internal/config"
	"github.com/brocklab/seqdat/internal/domain/consolidate"
	"github.com/brocklab/seqdat/internal/domain/infosheet"
	"github.com/brocklab/seqdat/internal/domain/project"
	"github.com/brocklab/seqdat/internal/metadata"
	"github.com/brocklab/seqdat/internal/prompt"
)

// app wires the core services for the command handlers.
type app struct {
	cfg        config.Config
	logger     *slog.Logger
	term       *prompt.Terminal
	confirm    prompt.Confirmer
	projects   *project.Service
	downloader *basespace.Downloader
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:           "seqdat",
		Short:         "Brock lab SEQuencing DATa manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var assumeYes bool
	root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every confirmation")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		a.term = prompt.NewTerminal(os.Stdin, os.Stdout)
		a.confirm = prompt.Confirmer(a.term)
		if assumeYes {
			a.confirm = prompt.AlwaysConfirm
		}

		store := metadata.NewStore(cfg.Database, a.confirm, logger)
		sheets := infosheet.NewMerger(a.confirm, logger)
		engine := consolidate.NewEngine(logger, func(p consolidate.Progress) {
			fmt.Printf("\r%s: %d/%d files", p.Sample, p.FilesDone, p.FilesTotal)
			if p.FilesDone == p.FilesTotal {
				fmt.Println()
			}
		})
		a.projects = project.NewService(cfg.Database, cfg.Separator, store, sheets, engine, logger)

		a.downloader = basespace.NewDownloader(logger)
		a.downloader.Stdout = os.Stdout
		a.downloader.Stderr = os.Stderr
	}

	root.AddCommand(
		newInitCmd(a),
		newInfoCmd(a),
		newMetaCmd(a),
		newMvCmd(a),
		newFetchCmd(a),
		newSheetCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
