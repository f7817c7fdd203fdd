package dues

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/shared"
	"go.uber.org/zap"
)

// SettlementService records dues payments. Each settled bill is one
// conditional status update plus one income ledger entry, committed
// together by the settlement store; the conditional update is what
// stops two concurrent payments of the same bill.
type SettlementService struct {
	billRepo dues.BillRepository
	store    dues.SettlementStore
	events   shared.EventPublisher
	logger   *zap.Logger
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(
	billRepo dues.BillRepository,
	store dues.SettlementStore,
	events shared.EventPublisher,
	logger *zap.Logger,
) *SettlementService {
	return &SettlementService{
		billRepo: billRepo,
		store:    store,
		events:   events,
		logger:   logger,
	}
}

// SettleBill settles one unpaid bill and returns its receipt
func (s *SettlementService) SettleBill(ctx context.Context, associationID, billID uuid.UUID) (*ReceiptResponse, error) {
	line, err := s.billRepo.FindLineByID(ctx, associationID, billID)
	if err != nil {
		return nil, err
	}
	if line.Status != dues.BillStatusUnpaid {
		return nil, shared.NewDomainError("INVALID_STATE", "Bill is already paid")
	}

	paidAt := time.Now()
	if err := s.settleLine(ctx, associationID, *line, paidAt); err != nil {
		return nil, err
	}

	settled := *line
	settled.Status = dues.BillStatusPaid
	settled.PaidAt = &paidAt

	receipt, err := dues.BuildReceipt([]dues.BillingLine{settled}, paidAt)
	if err != nil {
		return nil, err
	}

	return ToReceiptResponse(receipt), nil
}

// SettleGroup settles every still-unpaid bill a household has in the
// period. Bills settled before a failure stay settled; the response
// carries a per-bill outcome list. A group with nothing left to pay
// returns an empty outcome list and no receipt.
func (s *SettlementService) SettleGroup(ctx context.Context, associationID, householdID uuid.UUID, month, year int) (*BulkSettlementResponse, error) {
	period, err := dues.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	lines, err := s.billRepo.FindLinesByHousehold(ctx, associationID, householdID)
	if err != nil {
		return nil, err
	}

	unpaid := make([]dues.BillingLine, 0, len(lines))
	for _, line := range lines {
		if line.Period.Equals(period) && line.Status == dues.BillStatusUnpaid {
			unpaid = append(unpaid, line)
		}
	}

	response := &BulkSettlementResponse{Outcomes: make([]SettlementOutcomeResponse, 0, len(unpaid))}
	if len(unpaid) == 0 {
		return response, nil
	}

	paidAt := time.Now()
	settled := make([]dues.BillingLine, 0, len(unpaid))
	for _, line := range unpaid {
		outcome := SettlementOutcomeResponse{BillID: line.BillID}
		if err := s.settleLine(ctx, associationID, line, paidAt); err != nil {
			outcome.Error = err.Error()
			s.logger.Warn("bulk settlement item failed",
				zap.String("bill_id", line.BillID.String()),
				zap.Error(err))
		} else {
			outcome.Settled = true
			paid := line
			paid.Status = dues.BillStatusPaid
			paid.PaidAt = &paidAt
			settled = append(settled, paid)
		}
		response.Outcomes = append(response.Outcomes, outcome)
	}

	if len(settled) > 0 {
		receipt, err := dues.BuildReceipt(settled, paidAt)
		if err != nil {
			return nil, err
		}
		response.Receipt = ToReceiptResponse(receipt)
	}

	return response, nil
}

// settleLine performs the transactional settlement writes and, on
// success, publishes the settlement event
func (s *SettlementService) settleLine(ctx context.Context, associationID uuid.UUID, line dues.BillingLine, paidAt time.Time) error {
	description := dues.SettlementDescription(line.CategoryName, line.HeadName)
	if err := s.store.Settle(ctx, associationID, line.BillID, paidAt, description); err != nil {
		return err
	}

	event := dues.NewBillSettledEventFromLine(associationID, line, paidAt)
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish settlement event",
			zap.String("bill_id", line.BillID.String()),
			zap.Error(err))
	}

	return nil
}
