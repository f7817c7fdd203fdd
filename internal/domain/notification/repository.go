package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// Repository defines the interface for notification persistence
type Repository interface {
	// FindByID finds a notification by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)

	// FindByUser finds a user's notifications, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Notification, error)

	// Save creates or updates a notification
	Save(ctx context.Context, n *Notification) error

	// MarkAllRead marks all of a user's notifications as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// CountUnread counts a user's unread notifications
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes a notification
	Delete(ctx context.Context, id uuid.UUID) error
}

// Mailer sends transactional email alongside in-app notifications.
// Delivery failures are logged and never fail the triggering operation.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
