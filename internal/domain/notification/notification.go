package notification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// Kind categorizes a notification for display
type Kind string

const (
	KindInfo    Kind = "info"
	KindBilling Kind = "billing"
	KindPayment Kind = "payment"
)

// IsValid checks if the kind is a valid Kind
func (k Kind) IsValid() bool {
	return k == KindInfo || k == KindBilling || k == KindPayment
}

// Notification is an in-app message addressed to one user
type Notification struct {
	shared.TenantAggregateRoot
	UserID  uuid.UUID
	Title   string
	Message string
	Kind    Kind
	Read    bool
}

// NewNotification creates an unread notification for a user
func NewNotification(associationID, userID uuid.UUID, title, message string, kind Kind) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID is required")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Notification kind must be info, billing, or payment")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot exceed 200 characters")
	}

	return &Notification{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(associationID),
		UserID:              userID,
		Title:               title,
		Message:             strings.TrimSpace(message),
		Kind:                kind,
	}, nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	if n.Read {
		return
	}
	n.Read = true
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
}
