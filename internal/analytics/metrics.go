package analytics

import "math"

// Derived metrics are pure functions of their aggregate inputs: no state,
// same input snapshot, same output.

// PercentChange returns (current-previous)/previous*100. By policy it
// returns 0 when previous is 0: the dashboard copy ("from last month")
// assumes a numeric answer always exists, so "no prior data" collapses to
// "no change". A documented approximation, not a mathematical claim.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// TransferRatio returns the unitless transfers/sales ratio. The second
// return is false when retail sales are 0 and no ratio exists.
func TransferRatio(transfers, sales float64) (float64, bool) {
	if sales == 0 {
		return 0, false
	}
	return transfers / sales, true
}

// TransferShare returns transfers as a percentage of total retail activity
// (sales + transfers), 0 when there was no activity at all.
func TransferShare(transfers, sales float64) float64 {
	activity := sales + transfers
	if activity == 0 {
		return 0
	}
	return transfers / activity * 100
}

// MonthlyAverage spreads a total movement across the observed months.
// At least one full period is required to form an average.
func MonthlyAverage(total float64, months int) (float64, error) {
	if months < 1 {
		return 0, ErrInsufficientData
	}
	return total / float64(months), nil
}

// SeasonalityIndex expresses a period total relative to the monthly
// average, as a percentage (100 = an average month).
func SeasonalityIndex(periodTotal, monthlyAverage float64) float64 {
	if monthlyAverage == 0 {
		return 0
	}
	return periodTotal / monthlyAverage * 100
}

// GrowthSeries returns consecutive month-over-month percentage changes;
// the result has one fewer element than the input.
func GrowthSeries(totals []float64) []float64 {
	if len(totals) < 2 {
		return nil
	}
	out := make([]float64, 0, len(totals)-1)
	for i := 1; i < len(totals); i++ {
		out = append(out, PercentChange(totals[i], totals[i-1]))
	}
	return out
}

// Mean returns the arithmetic mean, 0 for an empty series.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	variance := 0.0
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(xs)))
}

// CoefficientOfVariation summarizes the stability of a series as
// stddev/|mean|*100. Returns 0 when the mean is 0 or the series is too
// short to carry a spread.
func CoefficientOfVariation(xs []float64) float64 {
	mean := Mean(xs)
	if mean == 0 || len(xs) < 2 {
		return 0
	}
	return StdDev(xs) / math.Abs(mean) * 100
}

// PositiveShare returns the percentage of strictly positive values.
func PositiveShare(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(CountPositive(xs)) / float64(len(xs)) * 100
}

// CountPositive reports how many values are strictly greater than zero.
func CountPositive(xs []float64) int {
	positive := 0
	for _, x := range xs {
		if x > 0 {
			positive++
		}
	}
	return positive
}
