package analytics

import "math"

// Unclassified is the fallback label for NaN or otherwise unusable inputs.
// Classification itself never fails.
const Unclassified = "Unclassified"

// Band is one threshold row: the label applies to values >= Min.
type Band struct {
	Min   float64
	Label string
}

// Table is an ordered threshold table evaluated top-down, first match wins.
// Lower bounds are inclusive; Else covers everything below the last band,
// so the bands partition the whole real line.
type Table struct {
	bands []Band
	els   string
}

// Classify maps a value to exactly one label.
func (t Table) Classify(value float64) string {
	if math.IsNaN(value) {
		return Unclassified
	}
	for _, band := range t.bands {
		if value >= band.Min {
			return band.Label
		}
	}
	return t.els
}

// The threshold tables below are the single source of truth for every tier,
// rating, and category label the dashboard shows. They used to live as
// branching literals scattered through the presentation layer.
var (
	// LogisticsPerformance rates an item's transfer efficiency percentage.
	LogisticsPerformance = Table{
		bands: []Band{
			{Min: 50, Label: "High Transfer Focus"},
			{Min: 30, Label: "Moderate Transfer Focus"},
			{Min: 15, Label: "Balanced Distribution"},
			{Min: 5, Label: "Sales Focus"},
		},
		els: "Minimal Transfers",
	}

	// EfficiencyLevel rates a monthly transfer share percentage.
	EfficiencyLevel = Table{
		bands: []Band{
			{Min: 25, Label: "High Efficiency"},
			{Min: 15, Label: "Moderate Efficiency"},
			{Min: 5, Label: "Low Efficiency"},
		},
		els: "Very Low Efficiency",
	}

	// GrowthCategory rates a month-over-month growth percentage.
	GrowthCategory = Table{
		bands: []Band{
			{Min: 10, Label: "Strong Growth"},
			{Min: 5, Label: "Moderate Growth"},
			{Min: 0, Label: "Slight Growth"},
			{Min: -5, Label: "Slight Decline"},
			{Min: -10, Label: "Moderate Decline"},
		},
		els: "Strong Decline",
	}

	// PartnershipTier rates a supplier's market share percentage.
	PartnershipTier = Table{
		bands: []Band{
			{Min: 15, Label: "Strategic Partner"},
			{Min: 8, Label: "Key Partner"},
			{Min: 3, Label: "Important Partner"},
			{Min: 1, Label: "Regular Partner"},
		},
		els: "Minor Partner",
	}

	// TurnoverRating rates average monthly movement in dollars.
	TurnoverRating = Table{
		bands: []Band{
			{Min: 50000, Label: "High Turnover"},
			{Min: 20000, Label: "Moderate Turnover"},
			{Min: 5000, Label: "Low Turnover"},
		},
		els: "Very Low Turnover",
	}

	// MixCategory rates an item type's contribution to retail sales.
	MixCategory = Table{
		bands: []Band{
			{Min: 10, Label: "Major Contributor"},
			{Min: 5, Label: "Moderate Contributor"},
		},
		els: "Minor Contributor",
	}

	// SeasonalPerformance rates a seasonality index (100 = average month).
	SeasonalPerformance = Table{
		bands: []Band{
			{Min: 110, Label: "Above Average"},
			{Min: 90, Label: "Average"},
		},
		els: "Below Average",
	}
)

// PerformanceTier rates a sales rank within a ranked list by percentile:
// the top 10% are stars, the next 20% strong, the next 30% good.
func PerformanceTier(rank, total int) string {
	if rank < 1 || total < 1 || rank > total {
		return Unclassified
	}
	percentile := float64(rank) / float64(total)
	switch {
	case percentile <= 0.10:
		return "Star Performer"
	case percentile <= 0.30:
		return "Strong Performer"
	case percentile <= 0.60:
		return "Good Performer"
	default:
		return "Standard Performer"
	}
}

// SupplierDiversity summarizes the breadth of the supplier base.
func SupplierDiversity(count int) string {
	switch {
	case count >= 20:
		return "High"
	case count >= 10:
		return "Moderate"
	default:
		return "Low"
	}
}
