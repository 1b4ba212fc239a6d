package analytics

import (
	"math"
	"testing"
)

func TestPartnershipTierLowerBoundsInclusive(t *testing.T) {
	cases := []struct {
		share float64
		want  string
	}{
		{16, "Strategic Partner"},
		{15, "Strategic Partner"},
		{8, "Key Partner"},
		{7.99, "Important Partner"},
		{3, "Important Partner"},
		{1, "Regular Partner"},
		{0.5, "Minor Partner"},
	}
	for _, tc := range cases {
		if got := PartnershipTier.Classify(tc.share); got != tc.want {
			t.Fatalf("share %v: got %q want %q", tc.share, got, tc.want)
		}
	}
}

func TestGrowthCategoryBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{12, "Strong Growth"},
		{10, "Strong Growth"},
		{5, "Moderate Growth"},
		{0, "Slight Growth"},
		{-0.01, "Slight Decline"},
		{-5, "Slight Decline"},
		{-10, "Moderate Decline"},
		{-10.01, "Strong Decline"},
	}
	for _, tc := range cases {
		if got := GrowthCategory.Classify(tc.pct); got != tc.want {
			t.Fatalf("growth %v: got %q want %q", tc.pct, got, tc.want)
		}
	}
}

func TestClassifyNaNIsUnclassified(t *testing.T) {
	tables := []Table{LogisticsPerformance, EfficiencyLevel, GrowthCategory, PartnershipTier, TurnoverRating, MixCategory, SeasonalPerformance}
	for i, table := range tables {
		if got := table.Classify(math.NaN()); got != Unclassified {
			t.Fatalf("table %d: NaN classified as %q", i, got)
		}
	}
}

func TestTurnoverRating(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{60000, "High Turnover"},
		{50000, "High Turnover"},
		{20000, "Moderate Turnover"},
		{5000, "Low Turnover"},
		{100, "Very Low Turnover"},
	}
	for _, tc := range cases {
		if got := TurnoverRating.Classify(tc.avg); got != tc.want {
			t.Fatalf("avg %v: got %q want %q", tc.avg, got, tc.want)
		}
	}
}

func TestPerformanceTierPercentiles(t *testing.T) {
	cases := []struct {
		rank, total int
		want        string
	}{
		{1, 10, "Star Performer"},
		{3, 10, "Strong Performer"},
		{6, 10, "Good Performer"},
		{7, 10, "Standard Performer"},
		{10, 10, "Standard Performer"},
		{1, 1, "Standard Performer"},
		{0, 10, Unclassified},
		{11, 10, Unclassified},
	}
	for _, tc := range cases {
		if got := PerformanceTier(tc.rank, tc.total); got != tc.want {
			t.Fatalf("rank %d/%d: got %q want %q", tc.rank, tc.total, got, tc.want)
		}
	}
}

func TestSupplierDiversity(t *testing.T) {
	if got := SupplierDiversity(25); got != "High" {
		t.Fatalf("25 suppliers: got %q", got)
	}
	if got := SupplierDiversity(10); got != "Moderate" {
		t.Fatalf("10 suppliers: got %q", got)
	}
	if got := SupplierDiversity(3); got != "Low" {
		t.Fatalf("3 suppliers: got %q", got)
	}
}
