package result

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFile(name string, runs ...*BrowserRun) *TestFile {
	return &TestFile{Name: name, FullName: name, Runs: runs}
}

func passedRun(file, browser string, d time.Duration) *BrowserRun {
	return &BrowserRun{Name: browser, FullName: file + "[" + browser + "]", Duration: d}
}

func failedRun(file, browser string, d time.Duration) *BrowserRun {
	return &BrowserRun{
		Name:     browser,
		FullName: file + "[" + browser + "]",
		Duration: d,
		Failure:  &RunError{File: file, Message: "boom"},
	}
}

func skippedRun(file, browser string) *BrowserRun {
	return &BrowserRun{Name: browser, FullName: file + "[" + browser + "]", Skipped: true}
}

func TestBrowserRun_Status(t *testing.T) {
	passed := passedRun("a.wet", "chrome", 0)
	assert.True(t, passed.Passed())
	assert.False(t, passed.Failed())

	failed := failedRun("a.wet", "chrome", 0)
	assert.False(t, failed.Passed())
	assert.True(t, failed.Failed())

	// An ignored run is skipped even when a failure is attached.
	skippedWithError := skippedRun("a.wet", "chrome")
	skippedWithError.Failure = &RunError{File: "a.wet", Message: "boom"}
	assert.False(t, skippedWithError.Passed())
	assert.False(t, skippedWithError.Failed())
}

func TestTestFile_Tally(t *testing.T) {
	pass := passedRun("a.wet", "chrome", 100*time.Millisecond)
	fail := failedRun("a.wet", "firefox", 50*time.Millisecond)
	skip := skippedRun("a.wet", "edge")
	file := newFile("a.wet", pass, fail, skip)

	file.Tally()

	assert.Equal(t, 3, file.TotalCount())
	assert.Equal(t, 1, file.PassCount())
	assert.Equal(t, 1, file.SkipCount())
	assert.Equal(t, 1, file.FailCount())
	assert.Equal(t, 150*time.Millisecond, file.Duration())
	assert.Equal(t, []*BrowserRun{pass}, file.PassedRuns())
	assert.Equal(t, []*BrowserRun{skip}, file.SkippedRuns())
	assert.Equal(t, []*BrowserRun{fail}, file.FailedRuns())

	for _, run := range file.Runs {
		assert.Same(t, file, run.Parent())
	}
}

func TestTestFile_Run_FirstMatchWins(t *testing.T) {
	first := passedRun("a.wet", "chrome", 10*time.Millisecond)
	second := failedRun("a.wet", "chrome", 20*time.Millisecond)
	file := newFile("a.wet", first, second)

	got, ok := file.Run("chrome")
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = file.Run("safari")
	assert.False(t, ok)
}

func TestSet_Tally_Invariants(t *testing.T) {
	set := NewSet("all")
	set.Suites = []*Suite{
		{Name: "s1", Files: []*TestFile{
			newFile("a.wet", passedRun("a.wet", "chrome", 120*time.Millisecond)),
			newFile("b.wet",
				failedRun("b.wet", "chrome", 30*time.Millisecond),
				skippedRun("b.wet", "firefox")),
		}},
		{Name: "s2", Files: []*TestFile{
			newFile("c.wet", passedRun("c.wet", "chrome", 50*time.Millisecond)),
		}},
	}

	set.Tally()

	assert.Equal(t, 4, set.TotalCount())
	assert.Equal(t, set.TotalCount(), set.PassCount()+set.SkipCount()+set.FailCount())
	assert.Equal(t, 2, set.PassCount())
	assert.Equal(t, 1, set.SkipCount())
	assert.Equal(t, 1, set.FailCount())

	var suiteTotal time.Duration
	for _, suite := range set.Suites {
		suiteTotal += suite.Duration
	}
	assert.Equal(t, suiteTotal, set.Duration())
	assert.Equal(t, 200*time.Millisecond, set.Duration())

	assert.Equal(t, []string{"a.wet", "b.wet", "c.wet"}, set.FileNames())
}

func TestSet_Tally_LastWriteWins(t *testing.T) {
	early := newFile("smoke.wet", failedRun("smoke.wet", "chrome", 10*time.Millisecond))
	late := newFile("smoke.wet", passedRun("smoke.wet", "chrome", 20*time.Millisecond))

	set := NewSet("all")
	set.Suites = []*Suite{
		{Name: "s1", Files: []*TestFile{early}},
		{Name: "s2", Files: []*TestFile{late}},
	}
	set.Tally()

	// The index holds exactly one entry for the shared name: the later
	// suite's file. The earlier one is absorbed, not summed.
	assert.Equal(t, []string{"smoke.wet"}, set.FileNames())
	got, ok := set.File("smoke.wet")
	require.True(t, ok)
	assert.Same(t, late, got)

	assert.Equal(t, 1, set.TotalCount())
	assert.Equal(t, 1, set.PassCount())
	assert.Equal(t, 0, set.FailCount())

	// Both suites remain with their own file entries.
	require.Len(t, set.Suites, 2)
	assert.Same(t, early, set.Suites[0].Files[0])
}

func TestSet_Tally_Idempotent(t *testing.T) {
	set := NewSet("all")
	set.Suites = []*Suite{
		{Name: "s1", Files: []*TestFile{
			newFile("a.wet",
				passedRun("a.wet", "chrome", 40*time.Millisecond),
				failedRun("a.wet", "firefox", 60*time.Millisecond)),
		}},
	}

	set.Tally()
	first := []any{set.TotalCount(), set.PassCount(), set.SkipCount(), set.FailCount(), set.Duration(), set.FileNames()}

	set.Tally()
	second := []any{set.TotalCount(), set.PassCount(), set.SkipCount(), set.FailCount(), set.Duration(), set.FileNames()}

	assert.Equal(t, first, second)
}

func TestSet_Merge_EmptyIsIdentity(t *testing.T) {
	set := NewSet("all")
	set.Suites = []*Suite{
		{Name: "s1", Files: []*TestFile{
			newFile("a.wet", passedRun("a.wet", "chrome", 120*time.Millisecond)),
		}},
	}
	set.Tally()

	merged := MergeAll(set, NewSet("empty"))
	merged.Tally()

	assert.Equal(t, set.TotalCount(), merged.TotalCount())
	assert.Equal(t, set.PassCount(), merged.PassCount())
	assert.Equal(t, set.Duration(), merged.Duration())
	assert.Equal(t, set.FileNames(), merged.FileNames())
}

func TestMergeAll_DoesNotTally(t *testing.T) {
	a := NewSet("a")
	a.Suites = []*Suite{{Name: "s1", Files: []*TestFile{
		newFile("a.wet", passedRun("a.wet", "chrome", 10*time.Millisecond)),
	}}}

	merged := MergeAll(a)

	// Counts stay zero until the caller tallies.
	assert.Equal(t, 0, merged.TotalCount())
	merged.Tally()
	assert.Equal(t, 1, merged.TotalCount())
}

func TestSet_AddRun_ProvisionalBuckets(t *testing.T) {
	set := NewSet("all")
	pass := passedRun("a.wet", "chrome", 0)
	fail := failedRun("a.wet", "firefox", 0)
	// Skip status is deliberately not evaluated at this stage.
	skippedButFailed := skippedRun("a.wet", "edge")
	skippedButFailed.Failure = &RunError{File: "a.wet", Message: "boom"}

	set.AddRun(pass)
	set.AddRun(fail)
	set.AddRun(skippedButFailed)

	assert.Equal(t, []*BrowserRun{pass}, set.PassedRuns())
	assert.Equal(t, []*BrowserRun{fail, skippedButFailed}, set.FailedRuns())
}

func TestNewSet_DefaultName(t *testing.T) {
	a := NewSet("")
	b := NewSet("")
	assert.NotEmpty(t, a.Name)
	assert.NotEqual(t, a.Name, b.Name, "generated names must be unique")
}
