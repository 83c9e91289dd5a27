package project

import (
	"context"

	"github.com/brocklab/seqdat/internal/domain/consolidate"
	"github.com/brocklab/seqdat/internal/domain/infosheet"
	"github.com/brocklab/seqdat/internal/repository"
)

// MetadataStore provides persistence for project metadata records.
type MetadataStore interface {
	Load(ctx context.Context, name string) (*Project, error)
	Save(ctx context.Context, proj *Project) (repository.SaveOutcome, error)
}

// SheetMerger regenerates a project's info sheet.
type SheetMerger interface {
	Merge(ctx context.Context, s infosheet.Summary, path string) (infosheet.Outcome, error)
}

// Concatenator consolidates one sample's raw files.
type Concatenator interface {
	Concat(ctx context.Context, req consolidate.Request) (*consolidate.Result, error)
}
