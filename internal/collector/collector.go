// Package collector discovers result files under a base directory, parses
// each one and combines everything into a single tallied Set.
//
// The collector owns the batch policy the core leaves open: one bad stream
// aborts the whole batch. Parsing is sequential; each parse owns its tree
// until the final merge, and the merge and tally run once, at the end.
package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wetator/wetreport/internal/parser"
	"github.com/wetator/wetreport/internal/result"
)

// NoResultsError reports that no result file matched any pattern while
// empty results are disallowed. Most likely a configuration error.
type NoResultsError struct {
	Patterns []string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no result files matched %v", e.Patterns)
}

// IsNoResults reports whether err is a NoResultsError.
// Uses errors.As to handle wrapped errors.
func IsNoResults(err error) bool {
	var nr *NoResultsError
	return errors.As(err, &nr)
}

// Collector collects and parses result files.
type Collector struct {
	// ResultPatterns are glob patterns relative to the base directory
	// selecting the result files to parse. A pattern may start with
	// "**/" to match at any depth.
	ResultPatterns []string

	// ReportPatterns optionally select human-readable report files whose
	// slash-normalized relative paths are recorded on the Set.
	ReportPatterns []string

	// AllowEmpty permits zero matched result files; the collector then
	// returns an empty tallied Set instead of a NoResultsError.
	AllowEmpty bool

	// Logf, when set, receives per-file progress messages.
	Logf func(format string, args ...any)
}

// Collect parses every matched result file under baseDir, merges the
// parsed trees and tallies exactly once.
func (c *Collector) Collect(baseDir string) (*result.Set, error) {
	files, err := expand(baseDir, c.ResultPatterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 && !c.AllowEmpty {
		return nil, &NoResultsError{Patterns: c.ResultPatterns}
	}

	all := result.NewSet("")
	for _, file := range files {
		c.logf("parsing %s", file)
		set, err := parser.ParseFile(filepath.Join(baseDir, file))
		if err != nil {
			return nil, err
		}
		all.Merge(set)
	}

	reports, err := expand(baseDir, c.ReportPatterns)
	if err != nil {
		return nil, err
	}
	for _, report := range reports {
		all.ReportFiles = append(all.ReportFiles, filepath.ToSlash(report))
	}

	all.Tally()
	return all, nil
}

func (c *Collector) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// expand resolves patterns to sorted, deduplicated relative paths.
func expand(baseDir string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var matches []string

	for _, pattern := range patterns {
		found, err := expandOne(baseDir, pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, m := range found {
			if !seen[m] {
				seen[m] = true
				matches = append(matches, m)
			}
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// expandOne matches one pattern against baseDir. Patterns starting with
// "**/" match their remainder at any directory depth; everything else is a
// plain filepath.Glob.
func expandOne(baseDir, pattern string) ([]string, error) {
	rest, anyDepth := strings.CutPrefix(pattern, "**/")
	if !anyDepth {
		found, err := filepath.Glob(filepath.Join(baseDir, pattern))
		if err != nil {
			return nil, err
		}
		rel := make([]string, 0, len(found))
		for _, f := range found {
			r, err := filepath.Rel(baseDir, f)
			if err != nil {
				return nil, err
			}
			rel = append(rel, r)
		}
		return rel, nil
	}

	var matches []string
	err := filepath.WalkDir(baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(baseDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		// Match the remainder against the path itself and against every
		// trailing sub-path, so "**/a/b.xml" finds "x/y/a/b.xml".
		for probe := rel; ; {
			ok, err := path.Match(rest, probe)
			if err != nil {
				return err
			}
			if ok {
				matches = append(matches, filepath.FromSlash(rel))
				break
			}
			i := strings.IndexByte(probe, '/')
			if i < 0 {
				break
			}
			probe = probe[i+1:]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
