package notification

import (
	"context"
	"fmt"

	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/household"
	"github.com/roronge/iuran04/internal/domain/notification"
	"github.com/roronge/iuran04/internal/domain/shared"
	"go.uber.org/zap"
)

// DuesEventHandler turns billing events into resident notifications
type DuesEventHandler struct {
	notifRepo     notification.Repository
	householdRepo household.Repository
	mailer        notification.Mailer
	logger        *zap.Logger
}

// NewDuesEventHandler creates a new DuesEventHandler
func NewDuesEventHandler(
	notifRepo notification.Repository,
	householdRepo household.Repository,
	mailer notification.Mailer,
	logger *zap.Logger,
) *DuesEventHandler {
	return &DuesEventHandler{
		notifRepo:     notifRepo,
		householdRepo: householdRepo,
		mailer:        mailer,
		logger:        logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *DuesEventHandler) EventTypes() []string {
	return []string{"BillSettled", "BillsGenerated"}
}

// Handle processes a domain event
func (h *DuesEventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *dues.BillSettledEvent:
		return h.handleBillSettled(ctx, e)
	case *dues.BillsGeneratedEvent:
		return h.handleBillsGenerated(ctx, e)
	default:
		return nil
	}
}

// handleBillSettled sends the household a payment confirmation
func (h *DuesEventHandler) handleBillSettled(ctx context.Context, event *dues.BillSettledEvent) error {
	hh, err := h.householdRepo.FindByID(ctx, event.AssociationID(), event.HouseholdID)
	if err != nil {
		return fmt.Errorf("find household for payment confirmation: %w", err)
	}

	title := "Pembayaran iuran diterima"
	message := fmt.Sprintf("Pembayaran iuran periode %s sebesar Rp%s telah dicatat.",
		event.Period.String(), event.Amount.Amount().StringFixed(0))

	if hh.UserID != nil {
		n, err := notification.NewNotification(event.AssociationID(), *hh.UserID, title, message, notification.KindPayment)
		if err != nil {
			return err
		}
		if err := h.notifRepo.Save(ctx, n); err != nil {
			return fmt.Errorf("store payment confirmation: %w", err)
		}
	}

	if hh.Email != "" {
		if err := h.mailer.Send(ctx, hh.Email, title, emailBody(hh.HeadName, message)); err != nil {
			h.logger.Warn("failed to email payment confirmation",
				zap.String("household_id", hh.ID.String()),
				zap.Error(err))
		}
	}

	return nil
}

// handleBillsGenerated tells every linked household about the new
// billing period. Email copies are skipped here, generation can touch
// hundreds of households at once.
func (h *DuesEventHandler) handleBillsGenerated(ctx context.Context, event *dues.BillsGeneratedEvent) error {
	households, err := h.householdRepo.FindActive(ctx, event.AssociationID())
	if err != nil {
		return fmt.Errorf("find households for billing notice: %w", err)
	}

	title := "Tagihan iuran baru"
	message := fmt.Sprintf("Tagihan iuran periode %s sudah diterbitkan.", event.Period.String())

	for i := range households {
		hh := &households[i]
		if hh.UserID == nil {
			continue
		}
		n, err := notification.NewNotification(event.AssociationID(), *hh.UserID, title, message, notification.KindBilling)
		if err != nil {
			return err
		}
		if err := h.notifRepo.Save(ctx, n); err != nil {
			h.logger.Warn("failed to store billing notice",
				zap.String("household_id", hh.ID.String()),
				zap.Error(err))
		}
	}

	return nil
}
