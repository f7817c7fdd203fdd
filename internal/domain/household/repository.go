package household

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// Filter extends the shared filter with household-specific criteria
type Filter struct {
	shared.Filter
	Status Status
	Block  string
}

// Repository defines the interface for household persistence
type Repository interface {
	// FindByID finds a household by ID within an association
	FindByID(ctx context.Context, associationID, id uuid.UUID) (*Household, error)

	// FindByUserID finds the household linked to a user account
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Household, error)

	// FindAll finds households in an association with filtering
	FindAll(ctx context.Context, associationID uuid.UUID, filter Filter) ([]Household, error)

	// FindActive finds all active households in an association
	FindActive(ctx context.Context, associationID uuid.UUID) ([]Household, error)

	// Save creates or updates a household
	Save(ctx context.Context, h *Household) error

	// Delete removes a household
	Delete(ctx context.Context, associationID, id uuid.UUID) error

	// Count counts households matching the filter
	Count(ctx context.Context, associationID uuid.UUID, filter Filter) (int64, error)

	// ExistsByAddress reports whether a household already occupies
	// the block and house number within the association
	ExistsByAddress(ctx context.Context, associationID uuid.UUID, block, houseNumber string) (bool, error)
}
