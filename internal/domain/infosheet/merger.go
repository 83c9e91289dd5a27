// Package infosheet regenerates a project's human-readable info sheet. The
// header block is recomputed from project metadata; everything from the
// marker line down is user-maintained and preserved verbatim.
package infosheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/brocklab/seqdat/internal/prompt"
	"github.com/brocklab/seqdat/internal/repository"
)

// Marker begins the preserved free-form tail of an info sheet.
const Marker = "## Additional Info"

const defaultTail = Marker + "\n\n...\n"

// ErrMarkerMissing indicates an existing info sheet has no marker line. The
// document layout is broken and regeneration refuses to guess where the
// user-maintained content starts.
var ErrMarkerMissing = errors.New("info sheet has no marker line")

// Outcome reports how a merge resolved.
type Outcome string

const (
	Created   Outcome = "created"
	Replaced  Outcome = "replaced"
	Unchanged Outcome = "unchanged"
	Skipped   Outcome = "skipped"
)

// Summary holds the project fields rendered into the header block. Nil
// pointers render as "unknown".
type Summary struct {
	Name        string
	Owner       *string
	RunType     *string
	SampleCount *int
}

func (s Summary) header() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", s.Name)
	fmt.Fprintf(&b, "- Owner: %s\n", orUnknown(s.Owner))
	fmt.Fprintf(&b, "- Run Type: %s\n", orUnknown(s.RunType))
	if s.SampleCount != nil {
		fmt.Fprintf(&b, "- Number of Samples: %d\n", *s.SampleCount)
	} else {
		b.WriteString("- Number of Samples: unknown\n")
	}
	b.WriteString("\n")
	return b.Bytes()
}

func orUnknown(v *string) string {
	if v == nil {
		return "unknown"
	}
	return *v
}

// Merger regenerates info sheets, deferring overwrite decisions to the
// injected confirmer. With a nil confirmer, conflicting merges fail with
// repository.ErrConflict instead of being resolved.
type Merger struct {
	confirm prompt.Confirmer
	logger  *slog.Logger
}

// NewMerger creates a Merger.
func NewMerger(confirm prompt.Confirmer, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Merger{confirm: confirm, logger: logger}
}

// Merge writes the regenerated sheet to path. A missing document is created
// with a placeholder tail. An existing document keeps its tail byte-for-byte;
// the replacement is written only on explicit consent.
func (m *Merger) Merge(ctx context.Context, s Summary, path string) (Outcome, error) {
	current, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		doc := append(s.header(), defaultTail...)
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		m.logger.Info("info sheet created", "path", path)
		return Created, nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	off := tailOffset(current)
	if off < 0 {
		return "", fmt.Errorf("%s: %w", path, ErrMarkerMissing)
	}
	proposed := append(s.header(), current[off:]...)

	if bytes.Equal(proposed, current) {
		return Unchanged, nil
	}

	if m.confirm == nil {
		return "", fmt.Errorf("info sheet %s differs: %w", path, repository.ErrConflict)
	}
	ok, err := m.confirm.Confirm(ctx, prompt.Confirmation{
		Title:    fmt.Sprintf("info sheet for %s already exists, overwrite it?", s.Name),
		Current:  string(current),
		Proposed: string(proposed),
	})
	if err != nil {
		return "", fmt.Errorf("confirming info sheet overwrite: %w", err)
	}
	if !ok {
		m.logger.Info("info sheet left unchanged", "path", path)
		return Skipped, nil
	}

	if err := os.WriteFile(path, proposed, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return Replaced, nil
}

// tailOffset returns the byte offset of the first line equal to Marker, or -1.
func tailOffset(data []byte) int {
	off := 0
	for off <= len(data) {
		rest := data[off:]
		end := bytes.IndexByte(rest, '\n')
		line := rest
		if end >= 0 {
			line = rest[:end]
		}
		if string(bytes.TrimRight(line, "\r")) == Marker {
			return off
		}
		if end < 0 {
			break
		}
		off += end + 1
	}
	return -1
}
