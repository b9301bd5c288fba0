package store

import (
	"context"
	"fmt"
	"time"
)

// BuildSummary is one recorded build's tallied top-level statistics.
type BuildSummary struct {
	ID         int64
	Name       string
	RecordedAt time.Time
	Total      int
	Passed     int
	Skipped    int
	Failed     int
	Duration   time.Duration
}

// FileSummary is one test file's tallied statistics within a recorded
// build.
type FileSummary struct {
	Name     string
	FullName string
	Total    int
	Passed   int
	Skipped  int
	Failed   int
	Duration time.Duration
}

// History returns the most recently recorded builds, newest first. A
// non-positive limit returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]BuildSummary, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded.
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, recorded_at, total, passed, skipped, failed, duration_ms
		FROM builds
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var builds []BuildSummary
	for rows.Next() {
		var b BuildSummary
		var recordedAt string
		var durationMS int64
		if err := rows.Scan(&b.ID, &b.Name, &recordedAt, &b.Total, &b.Passed, &b.Skipped, &b.Failed, &durationMS); err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		b.RecordedAt, err = time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("scan build %d: %w", b.ID, err)
		}
		b.Duration = time.Duration(durationMS) * time.Millisecond
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// BuildFiles returns the per-file rows of one recorded build, in recording
// order.
func (s *Store) BuildFiles(ctx context.Context, buildID int64) ([]FileSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, full_name, total, passed, skipped, failed, duration_ms
		FROM build_files
		WHERE build_id = ?
		ORDER BY rowid ASC
	`, buildID)
	if err != nil {
		return nil, fmt.Errorf("query build files: %w", err)
	}
	defer rows.Close()

	var files []FileSummary
	for rows.Next() {
		var f FileSummary
		var durationMS int64
		if err := rows.Scan(&f.Name, &f.FullName, &f.Total, &f.Passed, &f.Skipped, &f.Failed, &durationMS); err != nil {
			return nil, fmt.Errorf("scan build file: %w", err)
		}
		f.Duration = time.Duration(durationMS) * time.Millisecond
		files = append(files, f)
	}
	return files, rows.Err()
}

// FileHistory returns the recorded statistics of one test file across
// builds, newest first. Useful for per-file trend views.
func (s *Store) FileHistory(ctx context.Context, name string, limit int) ([]BuildSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, bf.name, b.recorded_at, bf.total, bf.passed, bf.skipped, bf.failed, bf.duration_ms
		FROM build_files bf
		JOIN builds b ON b.id = bf.build_id
		WHERE bf.name = ?
		ORDER BY b.id DESC
		LIMIT ?
	`, name, limit)
	if err != nil {
		return nil, fmt.Errorf("query file history: %w", err)
	}
	defer rows.Close()

	var builds []BuildSummary
	for rows.Next() {
		var b BuildSummary
		var recordedAt string
		var durationMS int64
		if err := rows.Scan(&b.ID, &b.Name, &recordedAt, &b.Total, &b.Passed, &b.Skipped, &b.Failed, &durationMS); err != nil {
			return nil, fmt.Errorf("scan file history: %w", err)
		}
		b.RecordedAt, err = time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("scan file history %d: %w", b.ID, err)
		}
		b.Duration = time.Duration(durationMS) * time.Millisecond
		builds = append(builds, b)
	}
	return builds, rows.Err()
}
