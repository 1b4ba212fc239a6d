package analytics

import "errors"

var (
	// ErrNoData indicates an empty record set for the requested grouping.
	// Surfaced to callers as the dashboard error payload, never as an
	// empty chart series.
	ErrNoData = errors.New("analytics: no data available")
	// ErrInsufficientData indicates fewer periods than a derived metric
	// requires, e.g. growth needs at least two months.
	ErrInsufficientData = errors.New("analytics: insufficient data")
)

// DataError pairs one of the sentinel conditions with the exact message the
// frontend displays. The HTTP layer unwraps it into the error payload.
type DataError struct {
	Kind    error
	Message string
}

func (e *DataError) Error() string { return e.Message }

func (e *DataError) Unwrap() error { return e.Kind }

func noData(message string) error {
	return &DataError{Kind: ErrNoData, Message: message}
}

func insufficientData(message string) error {
	return &DataError{Kind: ErrInsufficientData, Message: message}
}
