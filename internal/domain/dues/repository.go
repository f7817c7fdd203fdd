package dues

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// CategoryRepository defines the interface for dues category persistence
type CategoryRepository interface {
	// FindByID finds a category by ID within an association
	FindByID(ctx context.Context, associationID, id uuid.UUID) (*Category, error)

	// FindAll finds all categories in an association
	FindAll(ctx context.Context, associationID uuid.UUID, filter shared.Filter) ([]Category, error)

	// ListAll returns every category in the association without paging.
	// Bill generation crosses the full set; an RT has few categories.
	ListAll(ctx context.Context, associationID uuid.UUID) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete removes a category
	Delete(ctx context.Context, associationID, id uuid.UUID) error

	// Count counts categories in an association
	Count(ctx context.Context, associationID uuid.UUID, filter shared.Filter) (int64, error)
}

// BillRepository defines the interface for bill persistence.
// Line queries return bills joined with household and category display
// fields so callers never do per-row lookups.
type BillRepository interface {
	// FindByID finds a bill by ID within an association
	FindByID(ctx context.Context, associationID, id uuid.UUID) (*Bill, error)

	// FindLineByID finds one bill with its display fields
	FindLineByID(ctx context.Context, associationID, id uuid.UUID) (*BillingLine, error)

	// FindLinesByPeriod finds all bills for a period with display fields
	FindLinesByPeriod(ctx context.Context, associationID uuid.UUID, period Period) ([]BillingLine, error)

	// FindLinesByHousehold finds a household's bills with display fields,
	// newest period first
	FindLinesByHousehold(ctx context.Context, associationID, householdID uuid.UUID) ([]BillingLine, error)

	// InsertIfAbsent bulk-inserts bills, silently skipping any whose
	// (household, category, month, year) combination already exists.
	// Returns the number of rows actually created.
	InsertIfAbsent(ctx context.Context, bills []Bill) (int, error)
}

// SettlementStore atomically performs the two settlement writes:
// a conditional status update that succeeds only while the bill is
// still unpaid, and the matching income ledger entry, committed as one
// transaction. A lost conditional update surfaces as ErrInvalidState,
// which also guards against two callers settling the same bill.
type SettlementStore interface {
	Settle(ctx context.Context, associationID, billID uuid.UUID, paidAt time.Time, description string) error
}
