package dues

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
)

// BillingService serves the bill list views: per-period groups for the
// admin and a household's own history for the resident.
type BillingService struct {
	billRepo dues.BillRepository
}

// NewBillingService creates a new BillingService
func NewBillingService(billRepo dues.BillRepository) *BillingService {
	return &BillingService{billRepo: billRepo}
}

// ListByPeriod returns one group per household that has bills for the
// period
func (s *BillingService) ListByPeriod(ctx context.Context, associationID uuid.UUID, month, year int) ([]BillGroupResponse, error) {
	period, err := dues.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	lines, err := s.billRepo.FindLinesByPeriod(ctx, associationID, period)
	if err != nil {
		return nil, err
	}

	groups := dues.GroupBills(lines)
	responses := make([]BillGroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, *ToBillGroupResponse(&groups[i]))
	}

	return responses, nil
}

// ListByHousehold returns a household's bills grouped per period,
// newest period first
func (s *BillingService) ListByHousehold(ctx context.Context, associationID, householdID uuid.UUID) ([]BillGroupResponse, error) {
	lines, err := s.billRepo.FindLinesByHousehold(ctx, associationID, householdID)
	if err != nil {
		return nil, err
	}

	byPeriod := make(map[dues.Period][]dues.BillingLine)
	for _, line := range lines {
		byPeriod[line.Period] = append(byPeriod[line.Period], line)
	}

	responses := make([]BillGroupResponse, 0, len(byPeriod))
	for _, periodLines := range byPeriod {
		groups := dues.GroupBills(periodLines)
		for i := range groups {
			responses = append(responses, *ToBillGroupResponse(&groups[i]))
		}
	}

	sort.Slice(responses, func(i, j int) bool {
		if responses[i].Year != responses[j].Year {
			return responses[i].Year > responses[j].Year
		}
		return responses[i].Month > responses[j].Month
	})

	return responses, nil
}
