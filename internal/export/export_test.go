package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/portfolio-cv/internal/content"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	mu       sync.Mutex
	loaded   string
	printed  bool
	closed   int
	loadErr  error
	printErr error
	block    bool
}

func (f *fakeTarget) Load(_ context.Context, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = html
	return f.loadErr
}

func (f *fakeTarget) Print(ctx context.Context) ([]byte, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.printErr != nil {
		return nil, f.printErr
	}
	f.printed = true
	return []byte("%PDF-1.4 fake"), nil
}

func (f *fakeTarget) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
}

type fakeLauncher struct {
	mu        sync.Mutex
	targets   []*fakeTarget
	launchErr error
	template  fakeTarget
}

func (l *fakeLauncher) Launch(context.Context) (Target, error) {
	if l.launchErr != nil {
		return nil, l.launchErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	t := &fakeTarget{loadErr: l.template.loadErr, printErr: l.template.printErr, block: l.template.block}
	l.targets = append(l.targets, t)
	return t, nil
}

func defaultRepo(t *testing.T) *types.Repository {
	t.Helper()
	repo, err := content.Default()
	require.NoError(t, err)
	return repo
}

func TestExport_Success(t *testing.T) {
	launcher := &fakeLauncher{}
	exp := New(defaultRepo(t), launcher, false)

	result, err := exp.Export(context.Background(), Options{Document: types.Options{DocumentType: types.DocumentCV}})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "CV", result.Title)
	assert.True(t, strings.HasPrefix(string(result.PDF), "%PDF"))
	assert.Contains(t, result.HTML, "<!DOCTYPE html>")

	require.Len(t, launcher.targets, 1)
	target := launcher.targets[0]
	assert.Equal(t, result.HTML, target.loaded)
	assert.True(t, target.printed)
	assert.Equal(t, 1, target.closed)
}

func TestExport_ReleasesTargetOnEveryPath(t *testing.T) {
	tests := []struct {
		name      string
		template  fakeTarget
		opts      Options
		wantStage string
	}{
		{name: "load fails", template: fakeTarget{loadErr: errors.New("boom")}, wantStage: StageLoad},
		{name: "print fails", template: fakeTarget{printErr: errors.New("no printer")}, wantStage: StagePrint},
		{name: "print times out", template: fakeTarget{block: true}, opts: Options{Timeout: 20 * time.Millisecond}, wantStage: StagePrint},
		{name: "print skipped", opts: Options{SkipPrint: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := &fakeLauncher{template: tt.template}
			exp := New(defaultRepo(t), launcher, false)

			result, err := exp.Export(context.Background(), tt.opts)
			if tt.wantStage != "" {
				require.Error(t, err)
				var exportErr *ExportError
				require.ErrorAs(t, err, &exportErr)
				assert.Equal(t, tt.wantStage, exportErr.Stage)
				assert.NotEmpty(t, exportErr.RunID)
			} else {
				require.NoError(t, err)
				assert.Empty(t, result.PDF)
			}

			require.Len(t, launcher.targets, 1)
			assert.Equal(t, 1, launcher.targets[0].closed, "target must be released exactly once")
		})
	}
}

func TestExport_TimeoutUnwrapsToDeadline(t *testing.T) {
	launcher := &fakeLauncher{template: fakeTarget{block: true}}
	exp := New(defaultRepo(t), launcher, false)

	_, err := exp.Export(context.Background(), Options{Timeout: 10 * time.Millisecond})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExport_LaunchFailure(t *testing.T) {
	launcher := &fakeLauncher{launchErr: errors.New("chrome not found")}
	exp := New(defaultRepo(t), launcher, false)

	_, err := exp.Export(context.Background(), Options{})
	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, StageLaunch, exportErr.Stage)
	assert.Contains(t, err.Error(), "chrome not found")
}

func TestExport_BuildFailureNeverLaunches(t *testing.T) {
	launcher := &fakeLauncher{}
	exp := New(nil, launcher, false)

	_, err := exp.Export(context.Background(), Options{})
	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, StageBuild, exportErr.Stage)
	assert.Empty(t, launcher.targets)
}

func TestExport_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	exp := New(defaultRepo(t), &fakeLauncher{}, false)

	pdfPath := filepath.Join(dir, "out", "resume.pdf")
	result, err := exp.Export(context.Background(), Options{OutputPath: pdfPath})
	require.NoError(t, err)
	assert.Equal(t, pdfPath, result.OutputPath)

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, result.PDF, data)

	htmlPath := filepath.Join(dir, "resume.html")
	_, err = exp.Export(context.Background(), Options{OutputPath: htmlPath, SkipPrint: true})
	require.NoError(t, err)

	data, err = os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestExport_ConcurrentRunsAreIndependent(t *testing.T) {
	launcher := &fakeLauncher{}
	exp := New(defaultRepo(t), launcher, false)

	const runs = 4
	ids := make([]string, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := exp.Export(context.Background(), Options{})
			if assert.NoError(t, err) {
				ids[i] = result.RunID
			}
		}(i)
	}
	wg.Wait()

	require.Len(t, launcher.targets, runs)
	seen := map[string]bool{}
	for i, id := range ids {
		assert.False(t, seen[id], "run ids must be unique")
		seen[id] = true
		assert.Equal(t, 1, launcher.targets[i].closed)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "cv.pdf", FileName(types.Options{DocumentType: types.DocumentCV, DomainFocus: types.FocusNanotech}, "pdf"))
	assert.Equal(t, "resume-nanotech-academic.pdf", FileName(types.Options{DocumentType: types.DocumentResume, DomainFocus: types.FocusNanotech, Audience: types.AudienceAcademic}, "pdf"))
	assert.Equal(t, "resume-dataScience-all.html", FileName(types.Options{}, "html"))
}

func TestNew_DefaultsToChrome(t *testing.T) {
	exp := New(nil, nil, true)
	_, ok := exp.launcher.(ChromeLauncher)
	assert.True(t, ok)
}
