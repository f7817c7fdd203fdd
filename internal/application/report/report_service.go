package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/ledger"
	"github.com/roronge/iuran04/internal/domain/report"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// ReportService assembles the admin recap views
type ReportService struct {
	reportRepo report.Repository
	entryRepo  ledger.Repository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.Repository, entryRepo ledger.Repository) *ReportService {
	return &ReportService{reportRepo: reportRepo, entryRepo: entryRepo}
}

// MonthlyRecap builds the dues recap for one period: per-category
// billed and collected totals, an overall summary, and the current
// cash balance
func (s *ReportService) MonthlyRecap(ctx context.Context, associationID uuid.UUID, filter RecapFilter) (*MonthlyRecapResponse, error) {
	period, err := dues.NewPeriod(filter.Month, filter.Year)
	if err != nil {
		return nil, err
	}

	categories, err := s.reportRepo.CategoryRecap(ctx, associationID, *period)
	if err != nil {
		return nil, err
	}

	billed := valueobject.ZeroIDR()
	collected := valueobject.ZeroIDR()
	responses := make([]CategoryRecapResponse, 0, len(categories))
	for _, c := range categories {
		billed = billed.MustAdd(c.TotalBilled)
		collected = collected.MustAdd(c.TotalPaid)
		responses = append(responses, toCategoryRecapResponse(c))
	}

	balance, err := s.entryRepo.Balance(ctx, associationID)
	if err != nil {
		return nil, err
	}

	return &MonthlyRecapResponse{
		Month:          period.Month,
		Year:           period.Year,
		Categories:     responses,
		Billed:         billed.Amount(),
		Collected:      collected.Amount(),
		CollectionRate: collectionRate(collected.Amount(), billed.Amount()),
		Balance:        balance.Amount(),
	}, nil
}
