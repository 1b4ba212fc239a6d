package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kiranfor2004/sales-dashboard/internal/records"
	"github.com/kiranfor2004/sales-dashboard/internal/shared"
)

func row(code, itemType, supplier string, year int, month time.Month, retail, transfers, warehouse float64) records.SalesRecord {
	return records.SalesRecord{
		ItemCode:        code,
		ItemDescription: code + " DESCRIPTION",
		ItemType:        itemType,
		Supplier:        supplier,
		Period:          shared.Period{Year: year, Month: month},
		RetailSales:     retail,
		RetailTransfers: transfers,
		WarehouseSales:  warehouse,
	}
}

func TestAggregateEmptyIsNoData(t *testing.T) {
	_, err := Aggregate(nil, ByItemType)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestAggregateSharesSumToHundred(t *testing.T) {
	rows := []records.SalesRecord{
		row("100001", "WINE", "ACME", 2020, time.January, 500, 50, 100),
		row("100002", "BEER", "ACME", 2020, time.January, 300, 30, 70),
		row("100003", "LIQUOR", "BRAVO", 2020, time.February, 200, 20, 30),
		row("100004", "WINE", "BRAVO", 2020, time.February, 100, 0, 0),
	}
	buckets, err := Aggregate(rows, ByItemType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets got %d", len(buckets))
	}
	shareSum := 0.0
	for _, b := range buckets {
		if got, want := b.Total, b.RetailSales+b.RetailTransfers+b.WarehouseSales; got != want {
			t.Fatalf("bucket %s total %v != channel sum %v", b.Key, got, want)
		}
		shareSum += b.Share
	}
	if math.Abs(shareSum-100) > 1e-6 {
		t.Fatalf("shares sum to %v, want 100", shareSum)
	}
}

func TestAggregateOrderAndTies(t *testing.T) {
	rows := []records.SalesRecord{
		row("100001", "WINE", "ACME", 2020, time.January, 100, 0, 0),
		row("100002", "BEER", "ACME", 2020, time.January, 100, 0, 0),
		row("100003", "LIQUOR", "ACME", 2020, time.January, 300, 0, 0),
	}
	buckets, err := Aggregate(rows, ByItemType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"LIQUOR", "BEER", "WINE"}
	for i, key := range want {
		if buckets[i].Key != key {
			t.Fatalf("position %d: got %s want %s", i, buckets[i].Key, key)
		}
	}
}

func TestSortChronologicallyCrossesYears(t *testing.T) {
	buckets := []Bucket{{Key: "2020-01"}, {Key: "2019-12"}, {Key: "2019-02"}}
	SortChronologically(buckets)
	want := []string{"2019-02", "2019-12", "2020-01"}
	for i, key := range want {
		if buckets[i].Key != key {
			t.Fatalf("position %d: got %s want %s", i, buckets[i].Key, key)
		}
	}
}

func TestTopNClampsAndCopies(t *testing.T) {
	buckets := []Bucket{{Key: "A", Total: 3}, {Key: "B", Total: 2}, {Key: "C", Total: 1}}
	top := TopN(buckets, 5)
	if len(top) != 3 {
		t.Fatalf("expected clamp to 3, got %d", len(top))
	}
	top = TopN(buckets, 2)
	if len(top) != 2 || top[0].Key != "A" || top[1].Key != "B" {
		t.Fatalf("unexpected top-2 %#v", top)
	}
	top[0].Total = 99
	if buckets[0].Total != 3 {
		t.Fatalf("TopN must copy, source mutated to %v", buckets[0].Total)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	buckets := []Bucket{
		{Key: "A", Channels: Channels{RetailTransfers: 5}},
		{Key: "B"},
		{Key: "C", Channels: Channels{RetailTransfers: 1}},
	}
	kept := Filter(buckets, func(b Bucket) bool { return b.RetailTransfers > 0 })
	if len(kept) != 2 || kept[0].Key != "A" || kept[1].Key != "C" {
		t.Fatalf("unexpected filtered buckets %#v", kept)
	}
}
