package project_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brocklab/seqdat/internal/domain/consolidate"
	"github.com/brocklab/seqdat/internal/domain/project"
	"github.com/brocklab/seqdat/internal/repository"
	"github.com/brocklab/seqdat/internal/repository/mocks"
)

func strPtr(s string) *string { return &s }

func newService(t *testing.T, root string, meta *mocks.MetadataStore, engine project.Concatenator) *project.Service {
	t.Helper()
	return project.NewService(root, "", meta, &mocks.SheetMerger{}, engine, nil)
}

func seedData(t *testing.T, root, name string, files ...string) {
	t.Helper()
	dataDir := filepath.Join(root, name, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, f), []byte(f), 0o644))
	}
}

func TestService_CreateValidation(t *testing.T) {
	svc := newService(t, t.TempDir(), &mocks.MetadataStore{}, nil)

	_, err := svc.Create(context.Background(), "  ", "", "")
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	proj, err := svc.Create(context.Background(), "JA20201", "daylin", "")
	require.NoError(t, err)
	require.Equal(t, "JA20201", proj.Name)
	require.Equal(t, "daylin", *proj.Owner)
	require.Nil(t, proj.RunType)
	require.Nil(t, proj.Samples)
}

func TestService_LoadMissingProject(t *testing.T) {
	svc := newService(t, t.TempDir(), &mocks.MetadataStore{}, nil)

	_, err := svc.Load(context.Background(), "JA20201")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestService_LoadAbsorbsMissingMetadata(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "JA20201"), 0o755))

	meta := &mocks.MetadataStore{}
	meta.On("Load", mock.Anything, "JA20201").
		Return((*project.Project)(nil), repository.ErrNotFound)

	svc := newService(t, root, meta, nil)
	proj, err := svc.Load(context.Background(), "JA20201")
	require.NoError(t, err)
	require.Equal(t, "JA20201", proj.Name)
	require.Nil(t, proj.Owner)
	require.Nil(t, proj.Samples)
}

func TestService_IdentifySamples(t *testing.T) {
	root := t.TempDir()
	seedData(t, root, "JA20201",
		"SAMP1_S1_L001_R1_001.fastq.gz",
		"SAMP2_S2_L001_R1_001.fastq.gz",
	)

	svc := newService(t, root, &mocks.MetadataStore{}, nil)
	proj := &project.Project{Name: "JA20201"}

	require.NoError(t, svc.IdentifySamples(context.Background(), proj))
	require.Equal(t, []string{"SAMP1", "SAMP2"}, proj.Samples)
}

func TestService_IdentifySamplesAbsorbsMissingData(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "JA20201"), 0o755))

	svc := newService(t, root, &mocks.MetadataStore{}, nil)
	proj := &project.Project{Name: "JA20201"}

	require.NoError(t, svc.IdentifySamples(context.Background(), proj))
	require.NotNil(t, proj.Samples)
	require.Empty(t, proj.Samples)
}

func TestService_ConsolidateNoSamples(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "JA20201"), 0o755))

	svc := newService(t, root, &mocks.MetadataStore{}, &mocks.Concatenator{})
	proj := &project.Project{Name: "JA20201"}

	_, err := svc.Consolidate(context.Background(), proj, project.ConsolidateRequest{
		OutDir: filepath.Join(root, "out"),
	})
	require.ErrorIs(t, err, project.ErrNoSamples)
}

func TestService_ConsolidateDestinationExists(t *testing.T) {
	root := t.TempDir()
	seedData(t, root, "JA20201", "SAMP1_S1_L001_R1_001.fastq.gz")
	out := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "keep.txt"), []byte("keep"), 0o644))

	engine := &mocks.Concatenator{}
	svc := newService(t, root, &mocks.MetadataStore{}, engine)
	proj := &project.Project{Name: "JA20201"}

	_, err := svc.Consolidate(context.Background(), proj, project.ConsolidateRequest{OutDir: out})
	require.ErrorIs(t, err, project.ErrDestinationExists)

	// Pre-existing contents are untouched and the engine never ran.
	data, err := os.ReadFile(filepath.Join(out, "keep.txt"))
	require.NoError(t, err)
	require.Equal(t, "keep", string(data))
	engine.AssertNotCalled(t, "Concat", mock.Anything, mock.Anything)
}

func TestService_ConsolidateIdentifiesWhenUnset(t *testing.T) {
	root := t.TempDir()
	seedData(t, root, "JA20201", "SAMP1_S1_L001_R1_001.fastq.gz")

	engine := &mocks.Concatenator{}
	engine.On("Concat", mock.Anything, mock.MatchedBy(func(req consolidate.Request) bool {
		return req.Sample == "SAMP1" && len(req.Files) == 1
	})).Return(&consolidate.Result{Sample: "SAMP1", Files: 1}, nil)

	svc := newService(t, root, &mocks.MetadataStore{}, engine)
	proj := &project.Project{Name: "JA20201"}

	report, err := svc.Consolidate(context.Background(), proj, project.ConsolidateRequest{
		OutDir: filepath.Join(root, "out"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, 1)
	require.Equal(t, []string{"SAMP1"}, proj.Samples)
	engine.AssertExpectations(t)
}

func TestService_ConsolidateContinuesPastFailures(t *testing.T) {
	root := t.TempDir()
	seedData(t, root, "JA20201",
		"SAMP1_S1_L001_R1_001.fastq.gz",
		"SAMP2_S2_L001_R1_001.fastq.gz",
	)

	boom := errors.New("disk full")
	engine := &mocks.Concatenator{}
	engine.On("Concat", mock.Anything, mock.MatchedBy(func(req consolidate.Request) bool {
		return req.Sample == "SAMP1"
	})).Return(nil, boom)
	engine.On("Concat", mock.Anything, mock.MatchedBy(func(req consolidate.Request) bool {
		return req.Sample == "SAMP2"
	})).Return(&consolidate.Result{Sample: "SAMP2", Files: 1}, nil)

	svc := newService(t, root, &mocks.MetadataStore{}, engine)
	proj := &project.Project{Name: "JA20201"}

	report, err := svc.Consolidate(context.Background(), proj, project.ConsolidateRequest{
		OutDir: filepath.Join(root, "out"),
	})
	require.ErrorIs(t, err, boom)
	require.Len(t, report.Results, 2)
	require.Equal(t, 1, report.Results[1].Files)
	engine.AssertExpectations(t)
}

func TestService_UpdateFieldsNeverTouchesName(t *testing.T) {
	root := t.TempDir()
	meta := &mocks.MetadataStore{}
	meta.On("Save", mock.Anything, mock.MatchedBy(func(p *project.Project) bool {
		return p.Name == "JA20201" && *p.Owner == "new owner" && *p.RunType == "MiSeq"
	})).Return(repository.SaveWritten, nil)

	svc := newService(t, root, meta, nil)
	proj := &project.Project{Name: "JA20201", Owner: strPtr("old owner")}

	outcome, err := svc.UpdateFields(context.Background(), proj, project.FieldUpdate{
		Owner:   strPtr("new owner"),
		RunType: strPtr("MiSeq"),
	})
	require.NoError(t, err)
	require.Equal(t, repository.SaveWritten, outcome)
	require.Equal(t, "JA20201", proj.Name)
	meta.AssertExpectations(t)
}

func TestService_UpdateFieldsPartial(t *testing.T) {
	meta := &mocks.MetadataStore{}
	meta.On("Save", mock.Anything, mock.Anything).Return(repository.SaveWritten, nil)

	svc := newService(t, t.TempDir(), meta, nil)
	proj := &project.Project{Name: "JA20201", Owner: strPtr("daylin"), RunType: strPtr("MiSeq")}

	_, err := svc.UpdateFields(context.Background(), proj, project.FieldUpdate{
		RunType: strPtr("NovaSeq S2"),
	})
	require.NoError(t, err)
	require.Equal(t, "daylin", *proj.Owner)
	require.Equal(t, "NovaSeq S2", *proj.RunType)
}

func TestProject_Equal(t *testing.T) {
	a := &project.Project{Name: "p", Owner: strPtr("x"), Samples: []string{"s1"}}
	b := &project.Project{Name: "p", Owner: strPtr("x"), Samples: []string{"s1"}}
	require.True(t, a.Equal(b))

	b.Samples = []string{}
	require.False(t, a.Equal(b), "nil and empty sample lists are distinct states")

	b.Samples = []string{"s2"}
	require.False(t, a.Equal(b))

	b = &project.Project{Name: "p", Owner: strPtr("y"), Samples: []string{"s1"}}
	require.False(t, a.Equal(b))
}
