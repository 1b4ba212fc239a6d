package analytics

import (
	"sort"

	"github.com/kiranfor2004/sales-dashboard/internal/records"
)

// Channels carries the per-channel sums of one aggregate bucket.
type Channels struct {
	RetailSales     float64
	RetailTransfers float64
	WarehouseSales  float64
}

// Sum returns the combined movement across all three channels.
func (c Channels) Sum() float64 {
	return c.RetailSales + c.RetailTransfers + c.WarehouseSales
}

// Bucket holds the aggregated totals for one value of a grouping dimension.
type Bucket struct {
	Key string
	Channels
	Total float64
	Share float64
}

// KeyFunc extracts the grouping dimension value from a record.
type KeyFunc func(records.SalesRecord) string

// Standard grouping dimensions.
var (
	ByItemType = func(r records.SalesRecord) string { return r.ItemType }
	BySupplier = func(r records.SalesRecord) string { return r.Supplier }
	ByItemCode = func(r records.SalesRecord) string { return r.ItemCode }
	ByPeriod   = func(r records.SalesRecord) string { return r.Period.String() }
)

// Aggregate groups rows by the key function, summing each channel per
// bucket. Shares are percentages of the grand total and sum to 100 within
// floating tolerance whenever the grand total is positive. Buckets come
// back sorted by total descending, ties broken by key, so top-N slicing is
// reproducible. Empty input is ErrNoData: downstream consumers assume at
// least one entry.
func Aggregate(rows []records.SalesRecord, key KeyFunc) ([]Bucket, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	index := make(map[string]int)
	buckets := make([]Bucket, 0)
	for _, row := range rows {
		k := key(row)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k})
		}
		buckets[i].RetailSales += row.RetailSales
		buckets[i].RetailTransfers += row.RetailTransfers
		buckets[i].WarehouseSales += row.WarehouseSales
	}

	grand := 0.0
	for i := range buckets {
		buckets[i].Total = buckets[i].Channels.Sum()
		grand += buckets[i].Total
	}
	for i := range buckets {
		if grand > 0 {
			buckets[i].Share = buckets[i].Total / grand * 100
		}
	}

	SortByTotalDesc(buckets)
	return buckets, nil
}

// SortByTotalDesc orders buckets by total descending, key ascending on ties.
func SortByTotalDesc(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Total != buckets[j].Total {
			return buckets[i].Total > buckets[j].Total
		}
		return buckets[i].Key < buckets[j].Key
	})
}

// SortByRetailDesc orders buckets by retail sales descending, key ascending
// on ties. Used by retail-only rankings such as the sales mix.
func SortByRetailDesc(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].RetailSales != buckets[j].RetailSales {
			return buckets[i].RetailSales > buckets[j].RetailSales
		}
		return buckets[i].Key < buckets[j].Key
	})
}

// SortByTransfersDesc orders buckets by retail transfers descending, key
// ascending on ties.
func SortByTransfersDesc(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].RetailTransfers != buckets[j].RetailTransfers {
			return buckets[i].RetailTransfers > buckets[j].RetailTransfers
		}
		return buckets[i].Key < buckets[j].Key
	})
}

// SortChronologically orders period-keyed buckets by calendar order. The
// canonical "YYYY-MM" key sorts lexicographically in calendar order.
func SortChronologically(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
}

// TopN returns a copy of the first n buckets of an already-sorted slice.
// Selecting top-n from an n-length result returns the same list.
func TopN(buckets []Bucket, n int) []Bucket {
	if n > len(buckets) {
		n = len(buckets)
	}
	out := make([]Bucket, n)
	copy(out, buckets[:n])
	return out
}

// Filter returns the buckets matching keep, preserving order.
func Filter(buckets []Bucket, keep func(Bucket) bool) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
