package identity

import (
	"github.com/roronge/iuran04/internal/domain/shared"
)

// UserCreatedEvent is raised when a new user account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// EventType returns the event type name
func (e *UserCreatedEvent) EventType() string {
	return "UserCreated"
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("UserCreated", "User", user.ID, user.AssociationID),
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserEmailChangedEvent is raised when a user's login email changes
type UserEmailChangedEvent struct {
	shared.BaseDomainEvent
	OldEmail string `json:"old_email"`
	NewEmail string `json:"new_email"`
}

// EventType returns the event type name
func (e *UserEmailChangedEvent) EventType() string {
	return "UserEmailChanged"
}

// NewUserEmailChangedEvent creates a new UserEmailChangedEvent
func NewUserEmailChangedEvent(user *User, oldEmail string) *UserEmailChangedEvent {
	return &UserEmailChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("UserEmailChanged", "User", user.ID, user.AssociationID),
		OldEmail:        oldEmail,
		NewEmail:        user.Email,
	}
}
