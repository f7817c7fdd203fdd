package household

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// Status represents the occupancy status of a household
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Household is a house registered in the association.
// HeadName is the head of family the association bills dues to.
// UserID links the household to a resident login account when one exists.
type Household struct {
	shared.TenantAggregateRoot
	HeadName    string
	Block       string
	HouseNumber string
	Email       string
	Phone       string
	Status      Status
	UserID      *uuid.UUID
}

// NewHousehold creates a new household in the given association
func NewHousehold(associationID uuid.UUID, headName, block, houseNumber, email, phone string) (*Household, error) {
	if associationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSOCIATION", "Association ID is required")
	}
	if err := validateHeadName(headName); err != nil {
		return nil, err
	}
	if err := validateAddress(block, houseNumber); err != nil {
		return nil, err
	}

	h := &Household{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(associationID),
		HeadName:            strings.TrimSpace(headName),
		Block:               strings.ToUpper(strings.TrimSpace(block)),
		HouseNumber:         strings.TrimSpace(houseNumber),
		Email:               strings.ToLower(strings.TrimSpace(email)),
		Phone:               strings.TrimSpace(phone),
		Status:              StatusActive,
	}

	h.AddDomainEvent(NewHouseholdRegisteredEvent(h))

	return h, nil
}

// UpdateProfile updates the head of family name and address
func (h *Household) UpdateProfile(headName, block, houseNumber string) error {
	if err := validateHeadName(headName); err != nil {
		return err
	}
	if err := validateAddress(block, houseNumber); err != nil {
		return err
	}

	h.HeadName = strings.TrimSpace(headName)
	h.Block = strings.ToUpper(strings.TrimSpace(block))
	h.HouseNumber = strings.TrimSpace(houseNumber)
	h.UpdatedAt = time.Now()
	h.IncrementVersion()

	return nil
}

// UpdateContact updates the household's email and phone number
func (h *Household) UpdateContact(email, phone string) {
	h.Email = strings.ToLower(strings.TrimSpace(email))
	h.Phone = strings.TrimSpace(phone)
	h.UpdatedAt = time.Now()
	h.IncrementVersion()
}

// Activate marks the household as occupied and billable
func (h *Household) Activate() error {
	if h.Status == StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Household is already active")
	}
	h.Status = StatusActive
	h.UpdatedAt = time.Now()
	h.IncrementVersion()
	return nil
}

// Deactivate marks the household as vacant.
// Inactive households are excluded from bill generation.
func (h *Household) Deactivate() error {
	if h.Status == StatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Household is already inactive")
	}
	h.Status = StatusInactive
	h.UpdatedAt = time.Now()
	h.IncrementVersion()
	return nil
}

// IsActive returns true if the household is active
func (h *Household) IsActive() bool {
	return h.Status == StatusActive
}

// LinkUser attaches a resident login account to the household
func (h *Household) LinkUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "User ID is required")
	}
	if h.UserID != nil && *h.UserID != userID {
		return shared.NewDomainError("USER_ALREADY_LINKED", "Household is already linked to another user")
	}
	h.UserID = &userID
	h.UpdatedAt = time.Now()
	h.IncrementVersion()
	return nil
}

// UnlinkUser detaches the resident login account from the household
func (h *Household) UnlinkUser() {
	h.UserID = nil
	h.UpdatedAt = time.Now()
	h.IncrementVersion()
}

// Address returns the block and house number as a single label
func (h *Household) Address() string {
	if h.Block == "" {
		return h.HouseNumber
	}
	return h.Block + "-" + h.HouseNumber
}

func validateHeadName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_HEAD_NAME", "Head of family name cannot be empty")
	}
	if len(name) > 150 {
		return shared.NewDomainError("INVALID_HEAD_NAME", "Head of family name cannot exceed 150 characters")
	}
	return nil
}

func validateAddress(block, houseNumber string) error {
	if strings.TrimSpace(houseNumber) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "House number cannot be empty")
	}
	if len(block) > 20 {
		return shared.NewDomainError("INVALID_ADDRESS", "Block cannot exceed 20 characters")
	}
	if len(houseNumber) > 20 {
		return shared.NewDomainError("INVALID_ADDRESS", "House number cannot exceed 20 characters")
	}
	return nil
}
