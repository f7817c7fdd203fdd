package household

import (
	"github.com/roronge/iuran04/internal/domain/shared"
)

// HouseholdRegisteredEvent is raised when a household is added to an association
type HouseholdRegisteredEvent struct {
	shared.BaseDomainEvent
	HeadName    string `json:"head_name"`
	Block       string `json:"block"`
	HouseNumber string `json:"house_number"`
}

// EventType returns the event type name
func (e *HouseholdRegisteredEvent) EventType() string {
	return "HouseholdRegistered"
}

// NewHouseholdRegisteredEvent creates a new HouseholdRegisteredEvent
func NewHouseholdRegisteredEvent(h *Household) *HouseholdRegisteredEvent {
	return &HouseholdRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("HouseholdRegistered", "Household", h.ID, h.AssociationID),
		HeadName:        h.HeadName,
		Block:           h.Block,
		HouseNumber:     h.HouseNumber,
	}
}
