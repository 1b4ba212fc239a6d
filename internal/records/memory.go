package records

import "context"

// MemoryRepository serves snapshots from a fixed in-memory row set. Used by
// tests and local development without Postgres.
type MemoryRepository struct {
	rows []SalesRecord
}

// NewMemoryRepository copies the given rows into an immutable backing slice.
func NewMemoryRepository(rows []SalesRecord) *MemoryRepository {
	backing := make([]SalesRecord, len(rows))
	copy(backing, rows)
	return &MemoryRepository{rows: backing}
}

// Snapshot returns a fresh copy so callers can never alias each other.
func (r *MemoryRepository) Snapshot(ctx context.Context) ([]SalesRecord, error) {
	cleaned, _ := Clean(r.rows)
	out := make([]SalesRecord, len(cleaned))
	copy(out, cleaned)
	return out, nil
}
