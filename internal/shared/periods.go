package shared

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod indicates a period string that does not parse to a calendar month.
var ErrInvalidPeriod = errors.New("period invalid")

// Period identifies one calendar month. The zero value is not a valid period.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses the canonical "YYYY-MM" form.
func ParsePeriod(value string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, value)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, value)
	}
	p := Period{Year: year, Month: time.Month(month)}
	if !p.Valid() {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, value)
	}
	return p, nil
}

// NewPeriod builds a period from numeric year and month components.
func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: time.Month(month)}
	if !p.Valid() {
		return Period{}, fmt.Errorf("%w: %d-%d", ErrInvalidPeriod, year, month)
	}
	return p, nil
}

// Valid reports whether the period names a real calendar month.
func (p Period) Valid() bool {
	return p.Year >= 1900 && p.Year <= 2200 && p.Month >= time.January && p.Month <= time.December
}

// IsZero reports whether the period is the zero value.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Key returns a total-ordered integer key, one step per month.
func (p Period) Key() int {
	return p.Year*12 + int(p.Month) - 1
}

// Before reports whether p precedes other.
func (p Period) Before(other Period) bool {
	return p.Key() < other.Key()
}

// Prev returns the preceding calendar month, crossing year boundaries.
func (p Period) Prev() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// YearAgo returns the same month in the previous year.
func (p Period) YearAgo() Period {
	return Period{Year: p.Year - 1, Month: p.Month}
}

// String renders the canonical "YYYY-MM" form, which also sorts chronologically.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
