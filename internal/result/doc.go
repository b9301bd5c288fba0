// Package result holds the in-memory tree built from parsed acceptance-test
// reports and the derived statistics computed over it.
//
// # Tree shape
//
// A Set owns an ordered list of Suites, one per parsed input stream. A Suite
// owns TestFiles, one per logical test file. A TestFile owns BrowserRuns,
// one per execution of that file under one browser. A BrowserRun carries at
// most one Failure, either a RunError (the whole run aborted before stepping
// began) or a StepError (a specific command failed).
//
// # Derived state
//
// Counts, durations, the name indexes and the passed/skipped/failed
// partitions are never authoritative stored state. They are rebuilt from the
// owned child sequences by Tally, which is idempotent and may be called at
// any time. Merge deliberately does not re-tally so that a caller can merge
// N parsed trees cheaply and tally exactly once.
//
// # Addressing
//
// Results are addressed by qualified name: "file" names a TestFile,
// "file[browser]" names one BrowserRun within it. Resolve implements the
// lookup against the indexes built by the last Tally.
package result
