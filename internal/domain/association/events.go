package association

import (
	"github.com/roronge/iuran04/internal/domain/shared"
)

// AssociationCreatedEvent is raised when a new association is provisioned
type AssociationCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// EventType returns the event type name
func (e *AssociationCreatedEvent) EventType() string {
	return "AssociationCreated"
}

// NewAssociationCreatedEvent creates a new AssociationCreatedEvent
func NewAssociationCreatedEvent(assoc *Association) *AssociationCreatedEvent {
	return &AssociationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AssociationCreated", "Association", assoc.ID, assoc.ID),
		Name:            assoc.Name,
	}
}
