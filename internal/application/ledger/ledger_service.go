package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/ledger"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// LedgerService handles cash-book operations
type LedgerService struct {
	entryRepo ledger.Repository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(entryRepo ledger.Repository) *LedgerService {
	return &LedgerService{entryRepo: entryRepo}
}

// CreateEntry records a manual cash-book entry
func (s *LedgerService) CreateEntry(ctx context.Context, associationID uuid.UUID, req CreateEntryRequest) (*EntryResponse, error) {
	date := time.Time{}
	if req.Date != nil {
		date = *req.Date
	}

	entry, err := ledger.NewManualEntry(associationID, date, req.Description, ledger.Direction(req.Direction), valueobject.NewMoneyIDR(req.Amount))
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	return ToEntryResponse(entry), nil
}

// List retrieves cash-book entries, newest first
func (s *LedgerService) List(ctx context.Context, associationID uuid.UUID, filter ListFilter) ([]EntryResponse, int64, error) {
	domainFilter := ledger.Filter{
		Filter:    shared.DefaultFilter(),
		Direction: ledger.Direction(filter.Direction),
		From:      filter.From,
		To:        filter.To,
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	entries, err := s.entryRepo.FindAll(ctx, associationID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.entryRepo.Count(ctx, associationID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *ToEntryResponse(&entries[i]))
	}

	return responses, total, nil
}

// Delete removes a manual cash-book entry. Entries written by bill
// settlement cannot be deleted; the bill's paid status stays the
// source of truth and the books stay consistent with it.
func (s *LedgerService) Delete(ctx context.Context, associationID, id uuid.UUID) error {
	entry, err := s.entryRepo.FindByID(ctx, associationID, id)
	if err != nil {
		return err
	}

	if entry.IsSettlementOriginated() {
		return shared.NewDomainError("INVALID_STATE", "Entries recorded by a bill payment cannot be deleted")
	}

	return s.entryRepo.Delete(ctx, associationID, id)
}

// Balance returns the association's current cash balance
func (s *LedgerService) Balance(ctx context.Context, associationID uuid.UUID) (*BalanceResponse, error) {
	balance, err := s.entryRepo.Balance(ctx, associationID)
	if err != nil {
		return nil, err
	}

	return &BalanceResponse{Balance: balance.Amount()}, nil
}
