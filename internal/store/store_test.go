package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wetator/wetreport/internal/result"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testFile(name string, passed, failed int, d time.Duration) *result.TestFile {
	file := &result.TestFile{Name: name, FullName: "tests/" + name}
	for i := 0; i < passed; i++ {
		file.Runs = append(file.Runs, &result.BrowserRun{Name: "chrome", Duration: d})
	}
	for i := 0; i < failed; i++ {
		file.Runs = append(file.Runs, &result.BrowserRun{
			Name:    "firefox",
			Failure: &result.RunError{File: name, Message: "boom"},
		})
	}
	return file
}

func talliedSet(name string, files ...*result.TestFile) *result.Set {
	set := result.NewSet(name)
	set.Suites = []*result.Suite{{Name: "run", Files: files}}
	set.Tally()
	return set
}

func TestOpen_CreatesAndReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Applying the schema to an existing database must be harmless.
	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestRecord_RoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	set := talliedSet("build-1",
		testFile("login.wet", 2, 1, 50*time.Millisecond),
		testFile("checkout.wet", 1, 0, 30*time.Millisecond),
	)

	buildID, err := s.Record(ctx, set, at)
	require.NoError(t, err)
	assert.Positive(t, buildID)

	builds, err := s.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, builds, 1)

	b := builds[0]
	assert.Equal(t, buildID, b.ID)
	assert.Equal(t, "build-1", b.Name)
	assert.True(t, b.RecordedAt.Equal(at), "recorded_at round-trip")
	assert.Equal(t, 4, b.Total)
	assert.Equal(t, 3, b.Passed)
	assert.Equal(t, 0, b.Skipped)
	assert.Equal(t, 1, b.Failed)
	assert.Equal(t, set.Duration(), b.Duration)
}

func TestHistory_NewestFirstAndLimit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	for _, name := range []string{"build-1", "build-2", "build-3"} {
		_, err := s.Record(ctx, talliedSet(name, testFile("a.wet", 1, 0, 0)), at)
		require.NoError(t, err)
		at = at.Add(time.Minute)
	}

	builds, err := s.History(ctx, 2)
	require.NoError(t, err)
	require.Len(t, builds, 2)
	assert.Equal(t, "build-3", builds[0].Name)
	assert.Equal(t, "build-2", builds[1].Name)

	all, err := s.History(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHistory_Empty(t *testing.T) {
	s := openStore(t)
	builds, err := s.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, builds)
}

func TestBuildFiles(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	set := talliedSet("build-1",
		testFile("login.wet", 1, 1, 40*time.Millisecond),
		testFile("checkout.wet", 2, 0, 10*time.Millisecond),
	)
	buildID, err := s.Record(ctx, set, time.Now())
	require.NoError(t, err)

	files, err := s.BuildFiles(ctx, buildID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Rows come back in recording order, which follows the index order.
	assert.Equal(t, "login.wet", files[0].Name)
	assert.Equal(t, "tests/login.wet", files[0].FullName)
	assert.Equal(t, 2, files[0].Total)
	assert.Equal(t, 1, files[0].Passed)
	assert.Equal(t, 1, files[0].Failed)
	assert.Equal(t, 40*time.Millisecond, files[0].Duration)

	assert.Equal(t, "checkout.wet", files[1].Name)
	assert.Equal(t, 2, files[1].Passed)
}

func TestBuildFiles_UnknownBuild(t *testing.T) {
	s := openStore(t)
	files, err := s.BuildFiles(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileHistory(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	_, err := s.Record(ctx, talliedSet("build-1",
		testFile("login.wet", 1, 1, 20*time.Millisecond),
		testFile("other.wet", 1, 0, 0)), at)
	require.NoError(t, err)

	id2, err := s.Record(ctx, talliedSet("build-2",
		testFile("login.wet", 2, 0, 30*time.Millisecond)), at.Add(time.Hour))
	require.NoError(t, err)

	history, err := s.FileHistory(ctx, "login.wet", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, id2, history[0].ID)
	assert.Equal(t, "login.wet", history[0].Name)
	assert.Equal(t, 2, history[0].Passed)
	assert.Equal(t, 0, history[0].Failed)
	assert.Equal(t, 1, history[1].Failed)

	limited, err := s.FileHistory(ctx, "login.wet", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, id2, limited[0].ID)
}

func TestFileHistory_UnknownFile(t *testing.T) {
	s := openStore(t)
	history, err := s.FileHistory(context.Background(), "missing.wet", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}
