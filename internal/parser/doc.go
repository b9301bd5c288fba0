// Package parser turns one acceptance-test report stream into a result
// tree.
//
// The parser is a path-driven state machine over encoding/xml tokens. It
// consumes events strictly in document order, maintains the current element
// nesting in an xmlpath.Path, and decides which entity to create or
// populate by matching the path against a fixed table of templates. A
// second, independent stack tracks the names of the currently open test
// files: report files can include other test files to arbitrary depth, and
// a failure nested anywhere under a run is attributed to the innermost
// open file at the moment it is read.
//
// Parsing is strictly single-threaded per stream and fails fast: malformed
// XML and missing required attributes abort the parse with no partial tree.
// Parsing independent streams concurrently is safe, as no state is shared
// between parses.
package parser
