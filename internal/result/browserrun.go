package result

import "time"

// BrowserRun is one execution of one test file under one browser.
//
// A run's status is derived, never stored: skipped if the report explicitly
// marked it ignored, else failed if a Failure is attached, else passed.
type BrowserRun struct {
	// Name is the browser identifier, e.g. "chrome".
	Name string

	// FullName is the qualified name "file[browser]".
	FullName string

	// Duration is the summed execution time of every command in the run,
	// across all nested test files.
	Duration time.Duration

	// Skipped is set when the report carried an ignored marker.
	Skipped bool

	// Failure is the run's single attached failure, or nil.
	Failure Failure

	// parent is the owning TestFile, set by the file's Tally.
	parent *TestFile
}

func (r *BrowserRun) resultNode() {}

// Passed reports whether the run neither was skipped nor failed.
func (r *BrowserRun) Passed() bool {
	return !r.Skipped && r.Failure == nil
}

// Failed reports whether the run carries a failure and was not skipped.
// An ignored run counts as skipped even when a failure is attached.
func (r *BrowserRun) Failed() bool {
	return !r.Skipped && r.Failure != nil
}

// Parent returns the TestFile the run belongs to after the last Tally.
func (r *BrowserRun) Parent() *TestFile {
	return r.parent
}
