package store

import (
	"context"
	"fmt"
	"time"

	"github.com/wetator/wetreport/internal/result"
)

// Record appends one build's tallied summary and its per-file rows in a
// single transaction. The set must already be tallied; Record stores the
// derived values as-is. Returns the new build id.
func (s *Store) Record(ctx context.Context, set *result.Set, at time.Time) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("record build: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO builds (name, recorded_at, total, passed, skipped, failed, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		set.Name,
		at.UTC().Format(time.RFC3339),
		set.TotalCount(),
		set.PassCount(),
		set.SkipCount(),
		set.FailCount(),
		set.Duration().Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("record build: %w", err)
	}

	buildID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record build: %w", err)
	}

	for _, name := range set.FileNames() {
		file, ok := set.File(name)
		if !ok {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO build_files (build_id, name, full_name, total, passed, skipped, failed, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			buildID,
			file.Name,
			file.FullName,
			file.TotalCount(),
			file.PassCount(),
			file.SkipCount(),
			file.FailCount(),
			file.Duration().Milliseconds(),
		)
		if err != nil {
			return 0, fmt.Errorf("record build file %q: %w", file.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("record build: %w", err)
	}
	return buildID, nil
}
