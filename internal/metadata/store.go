// Package metadata persists project metadata records as meta.yml documents
// under the database root. It implements the project.MetadataStore boundary.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/brocklab/seqdat/internal/domain/project"
	"github.com/brocklab/seqdat/internal/prompt"
	"github.com/brocklab/seqdat/internal/repository"
)

const fileName = "meta.yml"

// Store reads and writes metadata records, deferring overwrite decisions to
// the injected confirmer. With a nil confirmer, conflicting saves fail with
// repository.ErrConflict instead of being resolved.
type Store struct {
	root    string
	confirm prompt.Confirmer
	logger  *slog.Logger
}

// NewStore creates a Store rooted at the database directory.
func NewStore(root string, confirm prompt.Confirmer, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{root: root, confirm: confirm, logger: logger}
}

// Path returns the metadata document path for a project.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name, fileName)
}

// Load parses a project's metadata record. A missing document yields
// repository.ErrNotFound; callers substitute a default record.
func (s *Store) Load(ctx context.Context, name string) (*project.Project, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("metadata for %s: %w", name, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var proj project.Project
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &proj, nil
}

// Save persists the record. A missing document is created (parents included).
// An existing document is loaded and compared field-by-field: an equal record
// is a no-op, a differing one is replaced only on explicit consent. Writes go
// through a temp file and rename, so no partial record is ever on disk.
func (s *Store) Save(ctx context.Context, proj *project.Project) (repository.SaveOutcome, error) {
	path := s.Path(proj.Name)
	data, err := yaml.Marshal(proj)
	if err != nil {
		return "", fmt.Errorf("encode metadata for %s: %w", proj.Name, err)
	}

	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := writeAtomic(path, data); err != nil {
			return "", err
		}
		s.logger.Info("metadata created", "project", proj.Name, "path", path)
		return repository.SaveCreated, nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	var old project.Project
	if err := yaml.Unmarshal(existing, &old); err != nil {
		return "", fmt.Errorf("parse existing %s: %w", path, err)
	}
	if old.Equal(proj) {
		s.logger.Info("metadata unchanged", "project", proj.Name)
		return repository.SaveUnchanged, nil
	}

	if s.confirm == nil {
		return "", fmt.Errorf("metadata for %s differs: %w", proj.Name, repository.ErrConflict)
	}
	ok, err := s.confirm.Confirm(ctx, prompt.Confirmation{
		Title:    fmt.Sprintf("metadata for %s differs, overwrite it?", proj.Name),
		Current:  string(existing),
		Proposed: string(data),
	})
	if err != nil {
		return "", fmt.Errorf("confirming metadata overwrite: %w", err)
	}
	if !ok {
		s.logger.Info("metadata left unchanged", "project", proj.Name)
		return repository.SaveDeclined, nil
	}

	if err := writeAtomic(path, data); err != nil {
		return "", err
	}
	return repository.SaveWritten, nil
}

// writeAtomic replaces path in a single rename so readers never observe a
// partially written record.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".meta-*.yml")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}
