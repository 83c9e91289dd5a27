// Package consolidate merges a sample's multi-lane raw read files into
// per-sample output streams by byte-exact concatenation.
package consolidate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/brocklab/seqdat/internal/domain/sample"
)

// Request describes one sample's consolidation.
type Request struct {
	Sample    string
	Files     []sample.File
	Dest      string
	Prefix    string
	Suffix    string
	PairedEnd bool
}

// Result reports what was written for one sample.
type Result struct {
	Sample  string
	Outputs []string
	Files   int
	Bytes   int64
}

// Progress is emitted after each input file finishes copying.
type Progress struct {
	Sample     string
	File       string
	FilesDone  int
	FilesTotal int
	Bytes      int64
}

// ProgressFunc observes copy progress. Reporting is an observable side
// effect only; correctness never depends on it. When samples run in
// parallel the callback is invoked from multiple goroutines.
type ProgressFunc func(Progress)

// Report aggregates the per-sample results of one consolidation run.
type Report struct {
	RunID   string
	Results []Result
}

// Engine streams raw read files into consolidated outputs.
type Engine struct {
	logger   *slog.Logger
	progress ProgressFunc
}

// NewEngine creates an Engine. progress may be nil.
func NewEngine(logger *slog.Logger, progress ProgressFunc) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{logger: logger, progress: progress}
}

// Concat writes the consolidated output file(s) for one sample.
//
// Paired-end mode partitions inputs by direction marker and writes both an R1
// and an R2 output, zero-length when a group is empty; undirected files
// belong to neither group. Unpaired mode concatenates all inputs into a
// single output, but aborts with ErrAmbiguousMode before any write if an
// R2-direction file is present. Output bytes equal the ordered concatenation
// of the input bytes.
func (e *Engine) Concat(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Sample: req.Sample}
	total := len(req.Files)

	if !req.PairedEnd {
		for _, f := range req.Files {
			if f.Direction() == sample.R2 {
				return nil, fmt.Errorf("sample %s has R2 files: %w", req.Sample, ErrAmbiguousMode)
			}
		}
		name := fmt.Sprintf("%s%s%s%s", req.Prefix, req.Sample, req.Suffix, sample.Extension)
		if err := e.concatInto(ctx, filepath.Join(req.Dest, name), req.Files, total, res); err != nil {
			return nil, err
		}
		return res, nil
	}

	var r1, r2 []sample.File
	for _, f := range req.Files {
		switch f.Direction() {
		case sample.R1:
			r1 = append(r1, f)
		case sample.R2:
			r2 = append(r2, f)
		}
	}

	// Both outputs are written even when a group is empty: a missing read
	// direction is upstream state worth surfacing as a zero-length file.
	r1Name := fmt.Sprintf("%s%s.R1%s%s", req.Prefix, req.Sample, req.Suffix, sample.Extension)
	if err := e.concatInto(ctx, filepath.Join(req.Dest, r1Name), r1, total, res); err != nil {
		return nil, err
	}
	r2Name := fmt.Sprintf("%s%s.R2%s%s", req.Prefix, req.Sample, req.Suffix, sample.Extension)
	if err := e.concatInto(ctx, filepath.Join(req.Dest, r2Name), r2, total, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) concatInto(ctx context.Context, dst string, files []sample.File, total int, res *Result) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			out.Close()
			return err
		}
		n, err := appendFile(out, f.Path)
		if err != nil {
			out.Close()
			return err
		}
		res.Files++
		res.Bytes += n
		if e.progress != nil {
			e.progress(Progress{
				Sample:     res.Sample,
				File:       f.Path,
				FilesDone:  res.Files,
				FilesTotal: total,
				Bytes:      res.Bytes,
			})
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	res.Outputs = append(res.Outputs, dst)
	e.logger.Debug("output written", "sample", res.Sample, "path", dst)
	return nil
}

func appendFile(out *os.File, path string) (int64, error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	n, err := io.Copy(out, in)
	if err != nil {
		return n, fmt.Errorf("copy %s: %w", path, err)
	}
	return n, nil
}
