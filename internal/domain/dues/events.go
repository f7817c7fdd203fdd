package dues

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// BillSettledEvent is raised when a bill transitions from unpaid to paid
type BillSettledEvent struct {
	shared.BaseDomainEvent
	HouseholdID uuid.UUID         `json:"household_id"`
	CategoryID  uuid.UUID         `json:"category_id"`
	Period      Period            `json:"period"`
	Amount      valueobject.Money `json:"amount"`
	PaidAt      time.Time         `json:"paid_at"`
}

// EventType returns the event type name
func (e *BillSettledEvent) EventType() string {
	return "BillSettled"
}

// NewBillSettledEvent creates a new BillSettledEvent
func NewBillSettledEvent(bill *Bill) *BillSettledEvent {
	paidAt := time.Now()
	if bill.PaidAt != nil {
		paidAt = *bill.PaidAt
	}
	return &BillSettledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("BillSettled", "Bill", bill.ID, bill.AssociationID),
		HouseholdID:     bill.HouseholdID,
		CategoryID:      bill.CategoryID,
		Period:          bill.Period,
		Amount:          bill.Amount,
		PaidAt:          paidAt,
	}
}

// NewBillSettledEventFromLine builds the settlement event from the
// settled billing line, for callers that settle through the store
// without loading the aggregate
func NewBillSettledEventFromLine(associationID uuid.UUID, line BillingLine, paidAt time.Time) *BillSettledEvent {
	return &BillSettledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("BillSettled", "Bill", line.BillID, associationID),
		HouseholdID:     line.HouseholdID,
		CategoryID:      line.CategoryID,
		Period:          line.Period,
		Amount:          line.Amount,
		PaidAt:          paidAt,
	}
}

// BillsGeneratedEvent is raised after a bill generation run completes
type BillsGeneratedEvent struct {
	shared.BaseDomainEvent
	Period  Period `json:"period"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// EventType returns the event type name
func (e *BillsGeneratedEvent) EventType() string {
	return "BillsGenerated"
}

// NewBillsGeneratedEvent creates a new BillsGeneratedEvent
func NewBillsGeneratedEvent(associationID uuid.UUID, result GenerationResult) *BillsGeneratedEvent {
	return &BillsGeneratedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("BillsGenerated", "Bill", uuid.New(), associationID),
		Period:          result.Period,
		Created:         result.Created,
		Skipped:         result.Skipped,
	}
}
