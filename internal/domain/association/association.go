package association

import (
	"strings"
	"time"

	"github.com/roronge/iuran04/internal/domain/shared"
)

// Status represents the status of an association
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Association is the RT (Rukun Tetangga) unit: the tenant that owns
// households, dues categories, bills and the cash book.
// It is the aggregate root for association-related operations.
type Association struct {
	shared.BaseAggregateRoot
	Name    string
	Address string
	Status  Status
}

// NewAssociation creates a new association with required fields
func NewAssociation(name, address string) (*Association, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	assoc := &Association{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Address:           strings.TrimSpace(address),
		Status:            StatusActive,
	}

	assoc.AddDomainEvent(NewAssociationCreatedEvent(assoc))

	return assoc, nil
}

// UpdateInfo updates the association's name and address
func (a *Association) UpdateInfo(name, address string) error {
	if err := validateName(name); err != nil {
		return err
	}

	a.Name = strings.TrimSpace(name)
	a.Address = strings.TrimSpace(address)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// Activate marks the association as active
func (a *Association) Activate() error {
	if a.Status == StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Association is already active")
	}
	a.Status = StatusActive
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Deactivate marks the association as inactive
func (a *Association) Deactivate() error {
	if a.Status == StatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Association is already inactive")
	}
	a.Status = StatusInactive
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// IsActive returns true if the association is active
func (a *Association) IsActive() bool {
	return a.Status == StatusActive
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Association name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Association name cannot exceed 200 characters")
	}
	return nil
}
