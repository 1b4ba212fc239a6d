package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranfor2004/sales-dashboard/internal/shared"
)

func validRecord() SalesRecord {
	return SalesRecord{
		ItemCode:        "100200",
		ItemDescription: "CORVINA RED BLEND",
		ItemType:        "WINE",
		Supplier:        "LANTERNA DISTRIBUTORS INC",
		Period:          shared.Period{Year: 2024, Month: time.March},
		RetailSales:     120.5,
		RetailTransfers: 14,
		WarehouseSales:  33,
	}
}

func TestValidateAcceptsWellFormedRow(t *testing.T) {
	require.NoError(t, Validate(validRecord()))
}

func TestValidateRejectsNegativeAmount(t *testing.T) {
	rec := validRecord()
	rec.RetailSales = -1
	assert.ErrorIs(t, Validate(rec), ErrInvalidRecord)
}

func TestValidateRejectsMissingDimensions(t *testing.T) {
	rec := validRecord()
	rec.Supplier = ""
	assert.ErrorIs(t, Validate(rec), ErrInvalidRecord)
}

func TestValidateRejectsZeroPeriod(t *testing.T) {
	rec := validRecord()
	rec.Period = shared.Period{}
	assert.ErrorIs(t, Validate(rec), ErrInvalidRecord)
}

func TestCleanCountsDroppedRows(t *testing.T) {
	bad := validRecord()
	bad.ItemType = ""
	cleaned, dropped := Clean([]SalesRecord{validRecord(), bad, validRecord()})
	assert.Len(t, cleaned, 2)
	assert.Equal(t, 1, dropped)
}

func TestMemoryRepositoryFiltersInvalidRows(t *testing.T) {
	bad := validRecord()
	bad.WarehouseSales = -10
	repo := NewMemoryRepository([]SalesRecord{validRecord(), bad})

	rows, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMemoryRepositorySnapshotsDoNotAlias(t *testing.T) {
	repo := NewMemoryRepository([]SalesRecord{validRecord()})
	a, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	b, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	a[0].RetailSales = 999999
	assert.NotEqual(t, a[0].RetailSales, b[0].RetailSales)
}
