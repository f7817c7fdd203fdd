package dues

import (
	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// ErrNothingToGenerate is returned when there are no active households
// or no categories to cross, so generation has nothing to write.
var ErrNothingToGenerate = shared.NewDomainError("NOTHING_TO_GENERATE", "No active households or dues categories to generate bills for")

// GenerationResult reports what a generation run did.
// Requested is the full cross product size; Created plus Skipped always
// equals Requested on success.
type GenerationResult struct {
	Period    Period `json:"period"`
	Requested int    `json:"requested"`
	Created   int    `json:"created"`
	Skipped   int    `json:"skipped"`
}

// BuildGenerationPlan computes the cross product of active households
// and dues categories for the period, one unpaid bill per pair. Each
// bill snapshots the category's current amount. The plan contains every
// combination; the store drops the ones that already exist.
func BuildGenerationPlan(associationID uuid.UUID, householdIDs []uuid.UUID, categories []Category, period Period) ([]Bill, error) {
	if _, err := NewPeriod(period.Month, period.Year); err != nil {
		return nil, err
	}
	if len(householdIDs) == 0 || len(categories) == 0 {
		return nil, ErrNothingToGenerate
	}

	bills := make([]Bill, 0, len(householdIDs)*len(categories))
	for _, householdID := range householdIDs {
		for i := range categories {
			bill, err := NewBill(associationID, householdID, categories[i].ID, period, categories[i].Amount)
			if err != nil {
				return nil, err
			}
			bills = append(bills, *bill)
		}
	}

	return bills, nil
}
