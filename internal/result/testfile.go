package result

import "time"

// TestFile aggregates all browser runs of one logical test file.
type TestFile struct {
	// Name is the short test file name, e.g. "login.wet".
	Name string

	// FullName is the file's path. It defaults to Name when the report
	// supplies no explicit path.
	FullName string

	// Runs are the file's browser runs in document order.
	Runs []*BrowserRun

	// Derived by Tally.
	passed     []*BrowserRun
	skipped    []*BrowserRun
	failed     []*BrowserRun
	totalCount int
	skipCount  int
	failCount  int
	duration   time.Duration
}

func (f *TestFile) resultNode() {}

// Tally recomputes the file's derived statistics from its runs: status
// partitions in original order, counts and the summed duration. It also
// points every run back at this file. Tally is idempotent.
func (f *TestFile) Tally() {
	f.duration = 0
	f.totalCount = 0
	f.skipCount = 0
	f.failCount = 0
	f.passed = nil
	f.skipped = nil
	f.failed = nil

	for _, run := range f.Runs {
		f.duration += run.Duration
		f.totalCount++
		switch {
		case run.Skipped:
			f.skipped = append(f.skipped, run)
			f.skipCount++
		case run.Failure != nil:
			f.failed = append(f.failed, run)
			f.failCount++
		default:
			f.passed = append(f.passed, run)
		}
		run.parent = f
	}
}

// TotalCount returns the number of browser runs.
func (f *TestFile) TotalCount() int { return f.totalCount }

// PassCount returns totalCount - skipCount - failCount.
func (f *TestFile) PassCount() int { return f.totalCount - f.skipCount - f.failCount }

// SkipCount returns the number of skipped runs.
func (f *TestFile) SkipCount() int { return f.skipCount }

// FailCount returns the number of failed runs.
func (f *TestFile) FailCount() int { return f.failCount }

// Duration returns the summed duration of all runs.
func (f *TestFile) Duration() time.Duration { return f.duration }

// PassedRuns returns the passed runs in document order.
func (f *TestFile) PassedRuns() []*BrowserRun { return f.passed }

// SkippedRuns returns the skipped runs in document order.
func (f *TestFile) SkippedRuns() []*BrowserRun { return f.skipped }

// FailedRuns returns the failed runs in document order.
func (f *TestFile) FailedRuns() []*BrowserRun { return f.failed }

// Run returns the first run whose browser name matches.
func (f *TestFile) Run(browser string) (*BrowserRun, bool) {
	for _, run := range f.Runs {
		if run.Name == browser {
			return run, true
		}
	}
	return nil, false
}
