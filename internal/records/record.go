// Package records provides read-only access to the historical sales
// transaction rows every dashboard pipeline aggregates over.
package records

import (
	"context"
	"errors"

	"github.com/kiranfor2004/sales-dashboard/internal/shared"
)

// ErrInvalidRecord marks a malformed row: negative amount, missing
// dimension, or an unparseable period. Invalid rows are excluded from
// aggregation, never fatal for a request.
var ErrInvalidRecord = errors.New("records: invalid record")

// SalesRecord is one immutable transaction row from the record store.
type SalesRecord struct {
	ItemCode        string        `validate:"required"`
	ItemDescription string        ``
	ItemType        string        `validate:"required"`
	Supplier        string        `validate:"required"`
	Period          shared.Period ``
	RetailSales     float64       `validate:"gte=0"`
	RetailTransfers float64       `validate:"gte=0"`
	WarehouseSales  float64       `validate:"gte=0"`
}

// Repository exposes an immutable snapshot of the record store. Snapshots
// from concurrent requests never share mutable state.
type Repository interface {
	Snapshot(ctx context.Context) ([]SalesRecord, error)
}
