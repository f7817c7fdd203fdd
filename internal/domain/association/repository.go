package association

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// Stats summarizes an association for the super-admin dashboard
type Stats struct {
	AssociationID  uuid.UUID `json:"association_id"`
	HouseholdCount int64     `json:"household_count"`
	AdminCount     int64     `json:"admin_count"`
}

// Repository defines the interface for association persistence
type Repository interface {
	// FindByID finds an association by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Association, error)

	// FindAll finds all associations with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Association, error)

	// Save creates or updates an association
	Save(ctx context.Context, assoc *Association) error

	// Delete removes an association
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts associations
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Stats returns per-association household and admin counts
	Stats(ctx context.Context, id uuid.UUID) (*Stats, error)
}
