package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
	"github.com/roronge/iuran04/internal/domain/shared/valueobject"
)

// Filter extends the shared filter with cash-book criteria
type Filter struct {
	shared.Filter
	Direction Direction
	From      *time.Time
	To        *time.Time
}

// Repository defines the interface for cash-book persistence
type Repository interface {
	// FindByID finds an entry by ID within an association
	FindByID(ctx context.Context, associationID, id uuid.UUID) (*Entry, error)

	// FindAll finds entries in an association with filtering,
	// newest first
	FindAll(ctx context.Context, associationID uuid.UUID, filter Filter) ([]Entry, error)

	// Save creates or updates an entry
	Save(ctx context.Context, entry *Entry) error

	// Delete removes an entry
	Delete(ctx context.Context, associationID, id uuid.UUID) error

	// Count counts entries matching the filter
	Count(ctx context.Context, associationID uuid.UUID, filter Filter) (int64, error)

	// Balance computes the signed sum of all entries in the
	// association. The sum runs in the store, the full history is
	// never loaded into memory.
	Balance(ctx context.Context, associationID uuid.UUID) (valueobject.Money, error)
}
