package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/brocklab/seqdat/internal/domain/consolidate"
	"github.com/brocklab/seqdat/internal/domain/infosheet"
	"github.com/brocklab/seqdat/internal/domain/sample"
	"github.com/brocklab/seqdat/internal/repository"
)

const (
	dataDirName   = "data"
	sheetFileName = "README.md"
)

// Service orchestrates project lifecycle operations against the directory
// layout <root>/<name>/{meta.yml,README.md,data}.
type Service struct {
	root   string
	sep    string
	meta   MetadataStore
	sheets SheetMerger
	engine Concatenator
	logger *slog.Logger
}

// NewService creates a project service rooted at the database directory.
// sep is the sample-identifier field separator; empty means the default.
func NewService(root, sep string, meta MetadataStore, sheets SheetMerger, engine Concatenator, logger *slog.Logger) *Service {
	if sep == "" {
		sep = sample.DefaultSeparator
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{root: root, sep: sep, meta: meta, sheets: sheets, engine: engine, logger: logger}
}

// Dir returns the project's directory under the database root.
func (s *Service) Dir(name string) string { return filepath.Join(s.root, name) }

// DataDir returns the directory the download collaborator deposits raw
// read files into.
func (s *Service) DataDir(name string) string { return filepath.Join(s.root, name, dataDirName) }

// SheetPath returns the project's info sheet path.
func (s *Service) SheetPath(name string) string {
	return filepath.Join(s.root, name, sheetFileName)
}

// Exists reports whether the project directory is present.
func (s *Service) Exists(name string) bool {
	info, err := os.Stat(s.Dir(name))
	return err == nil && info.IsDir()
}

// Create builds a new in-memory project. Empty owner or run type stay unset.
func (s *Service) Create(ctx context.Context, name, owner, runType string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name required", repository.ErrInvalidInput)
	}
	proj := &Project{Name: name}
	if owner = strings.TrimSpace(owner); owner != "" {
		proj.Owner = &owner
	}
	if runType = strings.TrimSpace(runType); runType != "" {
		proj.RunType = &runType
	}
	return proj, nil
}

// Load reconstructs a project from its metadata record. The project
// directory must exist; a missing metadata file is absorbed into a default
// record.
func (s *Service) Load(ctx context.Context, name string) (*Project, error) {
	if !s.Exists(name) {
		return nil, fmt.Errorf("project %s: %w", name, ErrProjectNotFound)
	}

	proj, err := s.meta.Load(ctx, name)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("loading project %s: %w", name, err)
		}
		s.logger.Info("no metadata found, using defaults", "project", name)
		proj = &Project{Name: name}
	}
	return proj, nil
}

// IdentifySamples rescans the raw data directory and replaces the project's
// cached sample list. A missing data directory is absorbed: the list becomes
// empty and the condition is logged.
func (s *Service) IdentifySamples(ctx context.Context, proj *Project) error {
	ids, err := sample.Scan(s.DataDir(proj.Name), s.sep)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("identifying samples for %s: %w", proj.Name, err)
		}
		s.logger.Info("no raw data available", "project", proj.Name)
		ids = []string{}
	}
	proj.Samples = ids
	return nil
}

// ConsolidateRequest describes a consolidation run.
type ConsolidateRequest struct {
	OutDir    string
	Prefix    string
	Suffix    string
	PairedEnd bool
	// Workers bounds per-sample parallelism; values below 1 run sequentially.
	Workers int
}

// Consolidate merges every sample's raw files into req.OutDir, one engine
// invocation per sample. Samples are identified first if the cache is unset.
// The output directory must not already exist. A failing sample does not stop
// the others; failures are aggregated into the returned error while the
// report carries every per-sample result.
func (s *Service) Consolidate(ctx context.Context, proj *Project, req ConsolidateRequest) (*consolidate.Report, error) {
	if proj.Samples == nil {
		if err := s.IdentifySamples(ctx, proj); err != nil {
			return nil, err
		}
	}
	if len(proj.Samples) == 0 {
		return nil, fmt.Errorf("project %s: %w", proj.Name, ErrNoSamples)
	}

	if _, err := os.Stat(req.OutDir); err == nil {
		return nil, fmt.Errorf("%s: %w", req.OutDir, ErrDestinationExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", req.OutDir, err)
	}

	groups, err := sample.Collect(s.DataDir(proj.Name), s.sep)
	if err != nil {
		return nil, fmt.Errorf("collecting files for %s: %w", proj.Name, err)
	}

	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", req.OutDir, err)
	}

	runID := uuid.NewString()
	s.logger.Info("consolidating project",
		"run", runID, "project", proj.Name, "samples", len(proj.Samples), "out", req.OutDir)

	results := make([]consolidate.Result, len(proj.Samples))
	errs := make([]error, len(proj.Samples))

	g := new(errgroup.Group)
	g.SetLimit(max(req.Workers, 1))
	for i, id := range proj.Samples {
		g.Go(func() error {
			res, err := s.engine.Concat(ctx, consolidate.Request{
				Sample:    id,
				Files:     groups[id],
				Dest:      req.OutDir,
				Prefix:    req.Prefix,
				Suffix:    req.Suffix,
				PairedEnd: req.PairedEnd,
			})
			if err != nil {
				// Other samples keep going; the failure is reported
				// in the aggregate.
				errs[i] = err
				results[i] = consolidate.Result{Sample: id}
				s.logger.Error("sample failed", "run", runID, "sample", id, "error", err)
				return nil
			}
			results[i] = *res
			s.logger.Info("sample consolidated",
				"run", runID, "sample", id, "files", res.Files, "bytes", res.Bytes)
			return nil
		})
	}
	g.Wait()

	return &consolidate.Report{RunID: runID, Results: results}, errors.Join(errs...)
}

// UpdateFields applies a typed partial update and persists the record.
func (s *Service) UpdateFields(ctx context.Context, proj *Project, u FieldUpdate) (repository.SaveOutcome, error) {
	proj.Apply(u)
	return s.SaveMetadata(ctx, proj)
}

// SaveMetadata persists the project's metadata record through the store's
// compare-then-conditionally-write contract.
func (s *Service) SaveMetadata(ctx context.Context, proj *Project) (repository.SaveOutcome, error) {
	return s.meta.Save(ctx, proj)
}

// WriteInfoSheet regenerates the project's info sheet header while the
// merger preserves the free-form tail.
func (s *Service) WriteInfoSheet(ctx context.Context, proj *Project) (infosheet.Outcome, error) {
	summary := infosheet.Summary{
		Name:    proj.Name,
		Owner:   proj.Owner,
		RunType: proj.RunType,
	}
	if proj.Samples != nil {
		n := len(proj.Samples)
		summary.SampleCount = &n
	}
	return s.sheets.Merge(ctx, summary, s.SheetPath(proj.Name))
}
