// Package basespace shells out to the BaseSpace CLI to populate a project's
// raw data directory. The download itself is a black box: the rest of the
// system only assumes files may fully, partially, or not at all exist under
// <root>/<name>/data afterwards.
package basespace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
)

const defaultCommand = "bs"

// Downloader runs `bs project download` for a project.
type Downloader struct {
	// Command overrides the bs binary name, mainly for tests.
	Command string
	// Stdout and Stderr receive the CLI's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer

	logger *slog.Logger
}

// NewDownloader creates a Downloader.
func NewDownloader(logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Downloader{logger: logger}
}

// Download deposits the project's raw files under <root>/<name>/data.
// extra is passed through to the bs CLI verbatim.
func (d *Downloader) Download(ctx context.Context, root, name string, extra []string) error {
	bin := d.Command
	if bin == "" {
		bin = defaultCommand
	}
	dest := filepath.Join(root, name, "data")
	args := append([]string{"project", "download", "--name", name, "-o", dest}, extra...)

	d.logger.Info("downloading raw data", "project", name, "dest", dest)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("bs project download %s: %w", name, err)
	}
	return nil
}
