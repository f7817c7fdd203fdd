package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// Filter extends the shared filter with user-specific criteria
type Filter struct {
	shared.Filter
	Role   Role
	Status UserStatus
}

// Repository defines the interface for user persistence
type Repository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by login email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByAssociation finds users in an association with filtering
	FindByAssociation(ctx context.Context, associationID uuid.UUID, filter Filter) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete removes a user
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts users in an association matching the filter
	Count(ctx context.Context, associationID uuid.UUID, filter Filter) (int64, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
