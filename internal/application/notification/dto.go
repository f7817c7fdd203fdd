package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/notification"
)

// SendNotificationRequest addresses a message to a set of households
type SendNotificationRequest struct {
	HouseholdIDs []uuid.UUID `json:"household_ids" binding:"required,min=1"`
	Title        string      `json:"title" binding:"required,min=1,max=200"`
	Message      string      `json:"message" binding:"required"`
	Kind         string      `json:"kind" binding:"required,oneof=info billing payment"`
}

// SendResult reports how a broadcast fanned out
type SendResult struct {
	Stored  int `json:"stored"`
	Emailed int `json:"emailed"`
	Skipped int `json:"skipped"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse carries a user's unread notification count
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// ToNotificationResponse converts a domain notification to a response DTO
func ToNotificationResponse(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Kind:      string(n.Kind),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
