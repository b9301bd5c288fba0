// Package store provides SQLite-backed history for recorded build results.
//
// Each recorded build stores the tallied top-level counts and duration plus
// one row per indexed test file, so per-file trends can be queried without
// re-parsing old reports. The store is append-only; recorded summaries are
// never updated.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
