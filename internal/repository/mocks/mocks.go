package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/brocklab/seqdat/internal/domain/consolidate"
	"github.com/brocklab/seqdat/internal/domain/infosheet"
	"github.com/brocklab/seqdat/internal/domain/project"
	"github.com/brocklab/seqdat/internal/prompt"
	"github.com/brocklab/seqdat/internal/repository"
)

// MetadataStore is a mock for project.MetadataStore.
type MetadataStore struct {
	mock.Mock
}

func (m *MetadataStore) Load(ctx context.Context, name string) (*project.Project, error) {
	args := m.Called(ctx, name)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MetadataStore) Save(ctx context.Context, proj *project.Project) (repository.SaveOutcome, error) {
	args := m.Called(ctx, proj)
	return args.Get(0).(repository.SaveOutcome), args.Error(1)
}

// SheetMerger is a mock for project.SheetMerger.
type SheetMerger struct {
	mock.Mock
}

func (m *SheetMerger) Merge(ctx context.Context, s infosheet.Summary, path string) (infosheet.Outcome, error) {
	args := m.Called(ctx, s, path)
	return args.Get(0).(infosheet.Outcome), args.Error(1)
}

// Concatenator is a mock for project.Concatenator.
type Concatenator struct {
	mock.Mock
}

func (m *Concatenator) Concat(ctx context.Context, req consolidate.Request) (*consolidate.Result, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*consolidate.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Confirmer is a mock for prompt.Confirmer.
type Confirmer struct {
	mock.Mock
}

func (m *Confirmer) Confirm(ctx context.Context, c prompt.Confirmation) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}
