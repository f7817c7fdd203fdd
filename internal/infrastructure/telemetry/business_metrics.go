package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/roronge/iuran04/internal/domain/dues"
	"github.com/roronge/iuran04/internal/domain/shared"
)

// BusinessMetrics tracks dues activity: bills issued by generation runs
// and payments recorded through settlement.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	billsGeneratedTotal *Counter
	billsSkippedTotal   *Counter
	paymentsTotal       *Counter
	paymentAmountTotal  *Counter
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(meter metric.Meter, logger *zap.Logger) (*BusinessMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:  meter,
		logger: logger,
	}

	var err error

	bm.billsGeneratedTotal, err = NewCounter(meter,
		"dues.bills.generated.total",
		"Total number of bills created by generation runs",
		"{bill}")
	if err != nil {
		return nil, fmt.Errorf("failed to create bills generated counter: %w", err)
	}

	bm.billsSkippedTotal, err = NewCounter(meter,
		"dues.bills.skipped.total",
		"Total number of bills skipped because they already existed",
		"{bill}")
	if err != nil {
		return nil, fmt.Errorf("failed to create bills skipped counter: %w", err)
	}

	bm.paymentsTotal, err = NewCounter(meter,
		"dues.payments.total",
		"Total number of dues payments recorded",
		"{payment}")
	if err != nil {
		return nil, fmt.Errorf("failed to create payments counter: %w", err)
	}

	bm.paymentAmountTotal, err = NewCounter(meter,
		"dues.payments.amount.total",
		"Total rupiah amount of dues payments recorded",
		"IDR")
	if err != nil {
		return nil, fmt.Errorf("failed to create payment amount counter: %w", err)
	}

	return bm, nil
}

// RecordGeneration records the outcome of one bill generation run.
func (bm *BusinessMetrics) RecordGeneration(ctx context.Context, associationID string, created, skipped int) {
	attrs := []attribute.KeyValue{
		attribute.String("association_id", associationID),
	}
	bm.billsGeneratedTotal.Add(ctx, int64(created), attrs...)
	bm.billsSkippedTotal.Add(ctx, int64(skipped), attrs...)
}

// RecordPayment records one settled bill.
func (bm *BusinessMetrics) RecordPayment(ctx context.Context, associationID string, amount int64) {
	attrs := []attribute.KeyValue{
		attribute.String("association_id", associationID),
	}
	bm.paymentsTotal.Inc(ctx, attrs...)
	bm.paymentAmountTotal.Add(ctx, amount, attrs...)
}

// MetricsEventHandler feeds business metrics from domain events so the
// application layer stays free of telemetry concerns.
type MetricsEventHandler struct {
	metrics *BusinessMetrics
	logger  *zap.Logger
}

// NewMetricsEventHandler creates a new MetricsEventHandler.
func NewMetricsEventHandler(metrics *BusinessMetrics, logger *zap.Logger) *MetricsEventHandler {
	return &MetricsEventHandler{metrics: metrics, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *MetricsEventHandler) EventTypes() []string {
	return []string{"BillsGenerated", "BillSettled"}
}

// Handle processes a domain event
func (h *MetricsEventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *dues.BillsGeneratedEvent:
		h.metrics.RecordGeneration(ctx, e.AssocID.String(), e.Created, e.Skipped)
	case *dues.BillSettledEvent:
		h.metrics.RecordPayment(ctx, e.AssocID.String(), e.Amount.Amount().IntPart())
	default:
		h.logger.Debug("unhandled event type", zap.String("event_type", event.EventType()))
	}
	return nil
}

var _ shared.EventHandler = (*MetricsEventHandler)(nil)
