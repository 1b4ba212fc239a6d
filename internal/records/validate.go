package records

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks one row against the store invariants: required
// dimensions, non-negative channel amounts, and a real calendar period.
func Validate(r SalesRecord) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if !r.Period.Valid() {
		return fmt.Errorf("%w: period %q", ErrInvalidRecord, r.Period)
	}
	return nil
}

// Clean returns the valid subset of rows and the number dropped.
func Clean(rows []SalesRecord) ([]SalesRecord, int) {
	cleaned := make([]SalesRecord, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if Validate(row) != nil {
			dropped++
			continue
		}
		cleaned = append(cleaned, row)
	}
	return cleaned, dropped
}
