package result

import (
	"time"

	"github.com/google/uuid"
)

// Result is a node of the result tree addressable by qualified name: the
// Set itself, a Suite, a TestFile or a BrowserRun.
type Result interface {
	// resultNode restricts implementers to this package.
	resultNode()
}

// Set is the top-level aggregate over one or more parse runs.
//
// The exported fields are the owned state; everything else is derived and
// rebuilt by Tally.
type Set struct {
	// Name identifies the set, by default a generated unique identifier.
	Name string

	// Suites are the parsed executions in merge order.
	Suites []*Suite

	// ReportFiles lists associated human-readable report files, with
	// slashes normalized. Recorded by the collector, not by the parser.
	ReportFiles []string

	// Derived by Tally. The passed/skipped/failed partitions are also
	// appended to provisionally during parsing and merging; Tally
	// rebuilds them authoritatively from the file index.
	passed     []*BrowserRun
	skipped    []*BrowserRun
	failed     []*BrowserRun
	totalCount int
	passCount  int
	skipCount  int
	failCount  int
	duration   time.Duration
	files      *fileIndex
	filesByKey map[string]*TestFile
}

func (s *Set) resultNode() {}

// NewSet returns an empty Set with the given name. An empty name is
// replaced by a generated unique identifier.
func NewSet(name string) *Set {
	if name == "" {
		name = uuid.NewString()
	}
	return &Set{
		Name:       name,
		files:      newFileIndex(),
		filesByKey: map[string]*TestFile{},
	}
}

// AddRun buckets a freshly parsed run as provisionally passed or failed,
// based solely on whether a failure is attached. Skip status is not
// evaluated here; the authoritative partitioning happens in Tally.
func (s *Set) AddRun(run *BrowserRun) {
	if run.Failure == nil {
		s.passed = append(s.passed, run)
	} else {
		s.failed = append(s.failed, run)
	}
}

// Merge appends other's suites, report files and flattened status
// partitions onto s. It does not rebuild the name index or the counts;
// the caller must Tally after merging all inputs.
func (s *Set) Merge(other *Set) {
	s.Suites = append(s.Suites, other.Suites...)
	s.ReportFiles = append(s.ReportFiles, other.ReportFiles...)
	s.passed = append(s.passed, other.passed...)
	s.skipped = append(s.skipped, other.skipped...)
	s.failed = append(s.failed, other.failed...)
}

// MergeAll combines any number of parsed trees into one unaggregated Set
// with a generated name. The caller is expected to Tally the result.
func MergeAll(sets ...*Set) *Set {
	merged := NewSet("")
	for _, set := range sets {
		merged.Merge(set)
	}
	return merged
}

// Tally recomputes every derived statistic bottom-up:
//
//  1. Every suite tallies its files and its own duration; the set duration
//     is the sum of suite durations.
//  2. The name index and its URL-safe-key counterpart are rebuilt by
//     walking every suite's file list in order. A later suite's file
//     overwrites an earlier entry with the same name, so a re-run under
//     the same name supersedes the earlier run in the top-level view.
//  3. The passed/skipped/failed partitions are rebuilt by concatenating
//     each indexed file's own partitions in index order, and the counts
//     are taken from the partition lengths.
//
// Tally is idempotent and only touches derived state.
func (s *Set) Tally() {
	s.duration = 0
	s.passed = nil
	s.skipped = nil
	s.failed = nil
	s.files = newFileIndex()
	s.filesByKey = map[string]*TestFile{}

	for _, suite := range s.Suites {
		suite.Tally()
		s.duration += suite.Duration

		for _, file := range suite.Files {
			s.files.put(file.Name, file)
			s.filesByKey[SafeName(file.Name)] = file
		}
	}

	for _, name := range s.files.order {
		file := s.files.byName[name]
		s.passed = append(s.passed, file.PassedRuns()...)
		s.skipped = append(s.skipped, file.SkippedRuns()...)
		s.failed = append(s.failed, file.FailedRuns()...)
	}

	s.passCount = len(s.passed)
	s.skipCount = len(s.skipped)
	s.failCount = len(s.failed)
	s.totalCount = s.passCount + s.skipCount + s.failCount
}

// TotalCount returns the number of indexed browser runs.
func (s *Set) TotalCount() int { return s.totalCount }

// PassCount returns the number of passed runs.
func (s *Set) PassCount() int { return s.passCount }

// SkipCount returns the number of skipped runs.
func (s *Set) SkipCount() int { return s.skipCount }

// FailCount returns the number of failed runs.
func (s *Set) FailCount() int { return s.failCount }

// Duration returns the summed duration of all suites.
func (s *Set) Duration() time.Duration { return s.duration }

// PassedRuns returns the passed runs across all indexed files.
func (s *Set) PassedRuns() []*BrowserRun { return s.passed }

// SkippedRuns returns the skipped runs across all indexed files.
func (s *Set) SkippedRuns() []*BrowserRun { return s.skipped }

// FailedRuns returns the failed runs across all indexed files.
func (s *Set) FailedRuns() []*BrowserRun { return s.failed }

// File looks a test file up by name in the index built by the last Tally.
func (s *Set) File(name string) (*TestFile, bool) {
	file, ok := s.files.byName[name]
	return file, ok
}

// FileByKey looks a test file up by its URL-safe key.
func (s *Set) FileByKey(key string) (*TestFile, bool) {
	file, ok := s.filesByKey[key]
	return file, ok
}

// FileNames returns the indexed file names in index order.
func (s *Set) FileNames() []string {
	return append([]string(nil), s.files.order...)
}

// fileIndex is an insertion-ordered name index. Overwriting an existing
// key replaces the value but keeps the key's original position.
type fileIndex struct {
	order  []string
	byName map[string]*TestFile
}

func newFileIndex() *fileIndex {
	return &fileIndex{byName: map[string]*TestFile{}}
}

func (ix *fileIndex) put(name string, file *TestFile) {
	if _, ok := ix.byName[name]; !ok {
		ix.order = append(ix.order, name)
	}
	ix.byName[name] = file
}
