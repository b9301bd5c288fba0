package parser

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/wetator/wetreport/internal/result"
)

// Snapshot types mirror the parsed tree with deterministic JSON shape for
// golden comparison. Durations are flattened to milliseconds.
type setSnapshot struct {
	Suite      string         `json:"suite"`
	Total      int            `json:"total"`
	Passed     int            `json:"passed"`
	Skipped    int            `json:"skipped"`
	Failed     int            `json:"failed"`
	DurationMS int64          `json:"duration_ms"`
	Files      []fileSnapshot `json:"files"`
}

type fileSnapshot struct {
	Name       string        `json:"name"`
	FullName   string        `json:"full_name"`
	Total      int           `json:"total"`
	Passed     int           `json:"passed"`
	Skipped    int           `json:"skipped"`
	Failed     int           `json:"failed"`
	DurationMS int64         `json:"duration_ms"`
	Runs       []runSnapshot `json:"runs"`
}

type runSnapshot struct {
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	Failure    string `json:"failure,omitempty"`
}

func snapshot(t *testing.T, set *result.Set) []byte {
	t.Helper()

	snap := setSnapshot{
		Suite:      set.Suites[0].Name,
		Total:      set.TotalCount(),
		Passed:     set.PassCount(),
		Skipped:    set.SkipCount(),
		Failed:     set.FailCount(),
		DurationMS: set.Duration().Milliseconds(),
	}
	for _, name := range set.FileNames() {
		file, ok := set.File(name)
		require.True(t, ok)

		fs := fileSnapshot{
			Name:       file.Name,
			FullName:   file.FullName,
			Total:      file.TotalCount(),
			Passed:     file.PassCount(),
			Skipped:    file.SkipCount(),
			Failed:     file.FailCount(),
			DurationMS: file.Duration().Milliseconds(),
		}
		for _, run := range file.Runs {
			rs := runSnapshot{
				Name:       run.Name,
				FullName:   run.FullName,
				Status:     runStatus(run),
				DurationMS: run.Duration.Milliseconds(),
			}
			if run.Failure != nil {
				rs.Failure = fmt.Sprint(run.Failure)
			}
			fs.Runs = append(fs.Runs, rs)
		}
		snap.Files = append(snap.Files, fs)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	require.NoError(t, err)
	return append(data, '\n')
}

func runStatus(run *result.BrowserRun) string {
	switch {
	case run.Skipped:
		return "skipped"
	case run.Failed():
		return "failed"
	default:
		return "passed"
	}
}

func TestParse_Golden(t *testing.T) {
	set, err := ParseFile("testdata/sample.xml")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sample", snapshot(t, set))
}
