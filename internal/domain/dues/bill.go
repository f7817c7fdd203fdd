package dues

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// BillStatus represents the payment status of a single bill
type BillStatus string

const (
	BillStatusUnpaid BillStatus = "unpaid"
	BillStatusPaid   BillStatus = "paid"
)

// IsValid checks if the status is a valid BillStatus
func (s BillStatus) IsValid() bool {
	return s == BillStatusUnpaid || s == BillStatusPaid
}

// Bill is one dues obligation: one household, one category, one period.
// Amount is a snapshot of the category rate at generation time.
// The tuple (household, category, month, year) is unique per association.
// A bill mutates exactly once, from unpaid to paid.
type Bill struct {
	shared.TenantAggregateRoot
	HouseholdID uuid.UUID
	CategoryID  uuid.UUID
	Period      Period
	Amount      valueobject.Money
	Status      BillStatus
	PaidAt      *time.Time
}

// NewBill creates a new unpaid bill
func NewBill(associationID, householdID, categoryID uuid.UUID, period Period, amount valueobject.Money) (*Bill, error) {
	if associationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSOCIATION", "Association ID is required")
	}
	if householdID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOUSEHOLD", "Household ID is required")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID is required")
	}
	if _, err := NewPeriod(period.Month, period.Year); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Bill amount must be positive")
	}

	return &Bill{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(associationID),
		HouseholdID:         householdID,
		CategoryID:          categoryID,
		Period:              period,
		Amount:              amount,
		Status:              BillStatusUnpaid,
	}, nil
}

// Settle marks the bill paid and stamps the payment timestamp.
// A bill that is not currently unpaid cannot be settled.
func (b *Bill) Settle(paidAt time.Time) error {
	if b.Status != BillStatusUnpaid {
		return shared.NewDomainError("INVALID_STATE", "Bill is already paid")
	}

	b.Status = BillStatusPaid
	b.PaidAt = &paidAt
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBillSettledEvent(b))

	return nil
}

// IsPaid returns true if the bill has been settled
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}
