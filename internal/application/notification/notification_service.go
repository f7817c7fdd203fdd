package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/notification"
	"github.com/roronge/iuran04/internal/domain/shared"
	"go.uber.org/zap"
)

// NotificationService handles in-app notifications and their email copies
type NotificationService struct {
	notifRepo     notification.Repository
	householdRepo household.Repository
	mailer        notification.Mailer
	logger        *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifRepo notification.Repository,
	householdRepo household.Repository,
	mailer notification.Mailer,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notifRepo:     notifRepo,
		householdRepo: householdRepo,
		mailer:        mailer,
		logger:        logger,
	}
}

// Send fans a message out to the given households. Households with a
// linked account get an in-app notification, households with an email
// address get an email copy. Delivery failures are logged per
// household and never abort the broadcast.
func (s *NotificationService) Send(ctx context.Context, associationID uuid.UUID, req SendNotificationRequest) (*SendResult, error) {
	result := &SendResult{}

	for _, householdID := range req.HouseholdIDs {
		h, err := s.householdRepo.FindByID(ctx, associationID, householdID)
		if err != nil {
			s.logger.Warn("skipping notification for unknown household",
				zap.String("household_id", householdID.String()),
				zap.Error(err))
			result.Skipped++
			continue
		}

		delivered := false
		if h.UserID != nil {
			if err := s.store(ctx, associationID, *h.UserID, req); err != nil {
				s.logger.Warn("failed to store notification",
					zap.String("household_id", h.ID.String()),
					zap.Error(err))
			} else {
				result.Stored++
				delivered = true
			}
		}
		if h.Email != "" {
			if err := s.mailer.Send(ctx, h.Email, req.Title, emailBody(h.HeadName, req.Message)); err != nil {
				s.logger.Warn("failed to email notification",
					zap.String("household_id", h.ID.String()),
					zap.Error(err))
			} else {
				result.Emailed++
				delivered = true
			}
		}
		if !delivered {
			result.Skipped++
		}
	}

	return result, nil
}

func (s *NotificationService) store(ctx context.Context, associationID, userID uuid.UUID, req SendNotificationRequest) error {
	n, err := notification.NewNotification(associationID, userID, req.Title, req.Message, notification.Kind(req.Kind))
	if err != nil {
		return err
	}
	return s.notifRepo.Save(ctx, n)
}

// ListByUser retrieves a user's notifications, newest first
func (s *NotificationService) ListByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]NotificationResponse, error) {
	notifications, err := s.notifRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *ToNotificationResponse(&notifications[i]))
	}

	return responses, nil
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.notifRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, shared.ErrNotFound
	}

	n.MarkRead()
	if err := s.notifRepo.Save(ctx, n); err != nil {
		return nil, err
	}

	return ToNotificationResponse(n), nil
}

// MarkAllRead marks all of the user's notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllRead(ctx, userID)
}

// CountUnread counts the user's unread notifications
func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (*UnreadCountResponse, error) {
	count, err := s.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{Count: count}, nil
}

// Delete removes one of the user's notifications
func (s *NotificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := s.notifRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return shared.ErrNotFound
	}
	return s.notifRepo.Delete(ctx, id)
}

func emailBody(headName, message string) string {
	return fmt.Sprintf("<p>Yth. %s,</p><p>%s</p><p>Pengurus RT</p>", headName, message)
}
