package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiranfor2004/sales-dashboard/internal/shared"
)

const snapshotQuery = `
SELECT item_code, item_description, item_type, supplier,
       year, month, retail_sales, retail_transfers, warehouse_sales
FROM sales_records
ORDER BY year, month, item_code`

// PostgresRepository reads sales rows from the sales_records table.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresRepository constructs a repository over a pgx pool.
func NewPostgresRepository(pool *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresRepository{pool: pool, logger: logger}
}

// Snapshot loads every stored row, dropping rows that fail validation.
// Dropped rows are logged and excluded rather than failing the request.
func (r *PostgresRepository) Snapshot(ctx context.Context) ([]SalesRecord, error) {
	rows, err := r.pool.Query(ctx, snapshotQuery)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return nil, fmt.Errorf("records: snapshot query (%s): %w", pgErr.Code, err)
		}
		return nil, fmt.Errorf("records: snapshot query: %w", err)
	}
	defer rows.Close()

	var out []SalesRecord
	dropped := 0
	for rows.Next() {
		var rec SalesRecord
		var year, month int
		if err := rows.Scan(
			&rec.ItemCode, &rec.ItemDescription, &rec.ItemType, &rec.Supplier,
			&year, &month, &rec.RetailSales, &rec.RetailTransfers, &rec.WarehouseSales,
		); err != nil {
			return nil, fmt.Errorf("records: scan row: %w", err)
		}
		period, err := shared.NewPeriod(year, month)
		if err == nil {
			rec.Period = period
		}
		if err := Validate(rec); err != nil {
			dropped++
			r.logger.Warn("dropping invalid record",
				slog.String("item_code", rec.ItemCode),
				slog.Any("error", err))
			continue
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("records: read rows: %w", err)
	}
	if dropped > 0 {
		r.logger.Warn("snapshot excluded invalid records", slog.Int("dropped", dropped))
	}
	return out, nil
}
