package result

import (
	"time"

	"github.com/google/uuid"
)

// Suite is the result of one parsed input stream (one execution).
type Suite struct {
	// Name is free-form, typically the report's start time. It defaults
	// to a generated unique identifier.
	Name string

	// Files are the suite's test files in document order.
	Files []*TestFile

	// Duration is set from the report's executionTime while parsing and
	// recomputed as the sum of file durations on every Tally.
	Duration time.Duration
}

func (s *Suite) resultNode() {}

// NewSuite returns a Suite with a generated unique name.
func NewSuite() *Suite {
	return &Suite{Name: uuid.NewString()}
}

// Tally recomputes every file's statistics and the suite duration as the
// sum of file durations. Summing files rather than runs avoids counting a
// run twice when a file recurs.
func (s *Suite) Tally() {
	var total time.Duration
	for _, file := range s.Files {
		file.Tally()
		total += file.Duration()
	}
	s.Duration = total
}
