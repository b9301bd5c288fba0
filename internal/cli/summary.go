package cli

import (
	"fmt"
	"io"

	"github.com/wetator/wetreport/internal/result"
)

// Summary is the JSON-facing view of a tallied result set.
type Summary struct {
	Name        string        `json:"name"`
	Total       int           `json:"total"`
	Passed      int           `json:"passed"`
	Skipped     int           `json:"skipped"`
	Failed      int           `json:"failed"`
	DurationMS  int64         `json:"duration_ms"`
	ReportFiles []string      `json:"report_files,omitempty"`
	Files       []FileSummary `json:"files"`
}

// FileSummary is one test file's view within a Summary.
type FileSummary struct {
	Name       string       `json:"name"`
	FullName   string       `json:"full_name"`
	Total      int          `json:"total"`
	Passed     int          `json:"passed"`
	Skipped    int          `json:"skipped"`
	Failed     int          `json:"failed"`
	DurationMS int64        `json:"duration_ms"`
	Failures   []RunFailure `json:"failures,omitempty"`
}

// RunFailure describes one failed browser run.
type RunFailure struct {
	Run    string `json:"run"`    // qualified name, e.g. "login.wet[chrome]"
	Kind   string `json:"kind"`   // "run" or "step"
	Detail string `json:"detail"` // human-readable failure description
}

// NewSummary builds a Summary from a tallied set. Files appear in index
// order, so re-runs show up once under their final results.
func NewSummary(set *result.Set) Summary {
	s := Summary{
		Name:        set.Name,
		Total:       set.TotalCount(),
		Passed:      set.PassCount(),
		Skipped:     set.SkipCount(),
		Failed:      set.FailCount(),
		DurationMS:  set.Duration().Milliseconds(),
		ReportFiles: set.ReportFiles,
	}
	for _, name := range set.FileNames() {
		file, ok := set.File(name)
		if !ok {
			continue
		}
		s.Files = append(s.Files, newFileSummary(file))
	}
	return s
}

func newFileSummary(file *result.TestFile) FileSummary {
	fs := FileSummary{
		Name:       file.Name,
		FullName:   file.FullName,
		Total:      file.TotalCount(),
		Passed:     file.PassCount(),
		Skipped:    file.SkipCount(),
		Failed:     file.FailCount(),
		DurationMS: file.Duration().Milliseconds(),
	}
	for _, run := range file.FailedRuns() {
		fs.Failures = append(fs.Failures, newRunFailure(run))
	}
	return fs
}

func newRunFailure(run *result.BrowserRun) RunFailure {
	rf := RunFailure{Run: run.FullName}
	switch failure := run.Failure.(type) {
	case *result.RunError:
		rf.Kind = "run"
		rf.Detail = failure.String()
	case *result.StepError:
		rf.Kind = "step"
		rf.Detail = failure.String()
	}
	return rf
}

// statusOf renders a run's derived status.
func statusOf(run *result.BrowserRun) string {
	switch {
	case run.Skipped:
		return "skipped"
	case run.Failure != nil:
		return "failed"
	default:
		return "passed"
	}
}

// writeSummaryText renders a Summary for humans.
func writeSummaryText(w io.Writer, s Summary) {
	fmt.Fprintf(w, "%d tests: %d passed, %d skipped, %d failed (%dms)\n",
		s.Total, s.Passed, s.Skipped, s.Failed, s.DurationMS)
	for _, file := range s.Files {
		fmt.Fprintf(w, "  %-40s %d/%d passed (%dms)\n",
			file.Name, file.Passed, file.Total, file.DurationMS)
		for _, failure := range file.Failures {
			fmt.Fprintf(w, "    FAIL %s (%s): %s\n", failure.Run, failure.Kind, failure.Detail)
		}
	}
}
