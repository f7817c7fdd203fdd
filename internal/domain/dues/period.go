package dues

import (
	"fmt"

	"github.com/roronge/iuran04/internal/domain/shared"
)

// Period is one billing month. It is a value object; two bills belong to
// the same period exactly when month and year both match.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewPeriod creates a validated billing period
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	if year < 1 {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", "Year must be a positive number")
	}
	return Period{Month: month, Year: year}, nil
}

// Equals returns true if both periods are the same month and year
func (p Period) Equals(other Period) bool {
	return p.Month == other.Month && p.Year == other.Year
}

// String returns the period as MM/YYYY
func (p Period) String() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}
