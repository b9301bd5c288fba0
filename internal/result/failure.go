package result

import (
	"fmt"
	"strings"
)

// Cause classifies what tripped a StepError.
type Cause string

const (
	// CauseError is an execution error: the command could not run at all.
	CauseError Cause = "ERROR"

	// CauseFailure is an assertion failure: the command ran but its check
	// did not hold.
	CauseFailure Cause = "FAILURE"
)

// Failure is a marker interface for the two failure kinds that can attach
// to a BrowserRun. Exactly one of RunError or StepError, or neither, is
// attached per run; the first one encountered in document order wins.
type Failure interface {
	// failureMarker restricts implementers to this package.
	failureMarker()
}

// RunError describes a failure that aborted a whole browser run before any
// step executed.
type RunError struct {
	// File is the test file the run belonged to.
	File string

	// Message is the free-text error message from the report.
	Message string
}

func (*RunError) failureMarker() {}

func (e *RunError) String() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// StepError describes a failure at a specific executable step within a
// browser run.
type StepError struct {
	// File is the test file containing the failing step. For steps inside
	// included files this is the innermost open file, not the outer one.
	File string

	// Line is the line number of the failing command within File.
	Line int

	// Command is the name of the failing command.
	Command string

	// Parameters holds the command's non-empty parameters, in positional
	// order. Empty parameter values are omitted, never recorded as blanks.
	Parameters []string

	// Cause tells an execution error apart from an assertion failure.
	Cause Cause

	// Message is the free-text error message from the report.
	Message string
}

func (*StepError) failureMarker() {}

func (e *StepError) String() string {
	if len(e.Parameters) == 0 {
		return fmt.Sprintf("%s:%d %s: %s", e.File, e.Line, e.Command, e.Message)
	}
	return fmt.Sprintf("%s:%d %s %s: %s", e.File, e.Line, e.Command, strings.Join(e.Parameters, " "), e.Message)
}
