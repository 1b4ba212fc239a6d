package analytics

import (
	"errors"
	"math"
	"testing"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"no change", 42, 42, 0},
		{"doubling", 200, 100, 100},
		{"halving", 50, 100, -50},
		{"zero previous collapses to zero", 500, 0, 0},
		{"zero both", 0, 0, 0},
	}
	for _, tc := range cases {
		if got := PercentChange(tc.current, tc.previous); got != tc.want {
			t.Fatalf("%s: PercentChange(%v, %v) = %v, want %v", tc.name, tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestTransferRatioUndefinedOnZeroSales(t *testing.T) {
	if _, ok := TransferRatio(10, 0); ok {
		t.Fatalf("expected no ratio when sales are zero")
	}
	ratio, ok := TransferRatio(25, 100)
	if !ok || ratio != 0.25 {
		t.Fatalf("TransferRatio(25, 100) = %v, %v", ratio, ok)
	}
}

func TestTransferShare(t *testing.T) {
	if got := TransferShare(25, 75); got != 25 {
		t.Fatalf("TransferShare(25, 75) = %v, want 25", got)
	}
	if got := TransferShare(0, 0); got != 0 {
		t.Fatalf("zero activity should yield 0, got %v", got)
	}
}

func TestMonthlyAverageNeedsOneMonth(t *testing.T) {
	if _, err := MonthlyAverage(100, 0); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	avg, err := MonthlyAverage(120, 12)
	if err != nil || avg != 10 {
		t.Fatalf("MonthlyAverage(120, 12) = %v, %v", avg, err)
	}
}

func TestGrowthSeries(t *testing.T) {
	got := GrowthSeries([]float64{100, 150, 75})
	want := []float64{50, -50}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %v want %v", i, got[i], want[i])
		}
	}
	if GrowthSeries([]float64{100}) != nil {
		t.Fatalf("single month should produce no series")
	}
}

func TestSeasonalityIndex(t *testing.T) {
	if got := SeasonalityIndex(150, 100); got != 150 {
		t.Fatalf("SeasonalityIndex(150, 100) = %v, want 150", got)
	}
	if got := SeasonalityIndex(150, 0); got != 0 {
		t.Fatalf("zero average should yield 0, got %v", got)
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	if got := CoefficientOfVariation([]float64{10, 10, 10}); got != 0 {
		t.Fatalf("constant series should have CV 0, got %v", got)
	}
	if got := CoefficientOfVariation([]float64{5}); got != 0 {
		t.Fatalf("short series should have CV 0, got %v", got)
	}
	got := CoefficientOfVariation([]float64{10, 20})
	// mean 15, population stddev 5, CV = 5/15*100
	want := 5.0 / 15.0 * 100
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("CV = %v, want %v", got, want)
	}
}

func TestPositiveShare(t *testing.T) {
	if got := PositiveShare([]float64{1, -2, 3, 0}); got != 50 {
		t.Fatalf("PositiveShare = %v, want 50", got)
	}
	if got := PositiveShare(nil); got != 0 {
		t.Fatalf("empty series share = %v, want 0", got)
	}
}

func TestCountPositive(t *testing.T) {
	if got := CountPositive([]float64{-33.3, -50, 30}); got != 1 {
		t.Fatalf("CountPositive = %d, want 1", got)
	}
	if got := CountPositive([]float64{0, -1}); got != 0 {
		t.Fatalf("zero is not positive, got %d", got)
	}
}
