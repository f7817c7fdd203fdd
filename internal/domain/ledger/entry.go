package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// Direction marks whether an entry adds to or subtracts from the cash balance
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// IsValid checks if the direction is a valid Direction
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Entry is one cash-book line. Entries created by dues settlement carry
// direction in and a back-reference to the bill that caused them; such
// entries cannot be deleted, the bill's paid status is their source of
// truth. Manual entries have no bill reference and are deletable.
type Entry struct {
	shared.TenantAggregateRoot
	Date        time.Time
	Description string
	Direction   Direction
	Amount      valueobject.Money
	BillID      *uuid.UUID
}

// NewManualEntry creates a cash-book entry recorded by an administrator
func NewManualEntry(associationID uuid.UUID, date time.Time, description string, direction Direction, amount valueobject.Money) (*Entry, error) {
	return newEntry(associationID, date, description, direction, amount, nil)
}

// NewSettlementEntry creates the income entry that records a bill payment
func NewSettlementEntry(associationID, billID uuid.UUID, date time.Time, description string, amount valueobject.Money) (*Entry, error) {
	if billID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BILL", "Bill ID is required for a settlement entry")
	}
	return newEntry(associationID, date, description, DirectionIn, amount, &billID)
}

func newEntry(associationID uuid.UUID, date time.Time, description string, direction Direction, amount valueobject.Money, billID *uuid.UUID) (*Entry, error) {
	if associationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSOCIATION", "Association ID is required")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Direction must be in or out")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Entry amount must be positive")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Entry description cannot be empty")
	}
	if len(description) > 300 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Entry description cannot exceed 300 characters")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Entry{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(associationID),
		Date:                date,
		Description:         description,
		Direction:           direction,
		Amount:              amount,
		BillID:              billID,
	}, nil
}

// IsSettlementOriginated returns true if the entry was written by a
// bill settlement rather than entered by hand
func (e *Entry) IsSettlementOriginated() bool {
	return e.BillID != nil
}

// SignedAmount returns the amount with direction applied: in is
// positive, out is negative
func (e *Entry) SignedAmount() valueobject.Money {
	if e.Direction == DirectionOut {
		return e.Amount.Negate()
	}
	return e.Amount
}

// SumBalance folds entries into a signed balance. The result is the
// same for any ordering of the input.
func SumBalance(entries []Entry) valueobject.Money {
	balance := valueobject.ZeroIDR()
	for i := range entries {
		balance = balance.MustAdd(entries[i].SignedAmount())
	}
	return balance
}
