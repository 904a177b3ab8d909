package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"seller-console/internal/apperr"
	"seller-console/internal/domain"
	"seller-console/internal/logx"
)

// Outcome labels for the tracking events counter.
const (
	outcomeMoved     = "moved"
	outcomeDelivered = "delivered"
	outcomeReturned  = "returned"
	outcomeCancelled = "cancelled"
	outcomeSkipped   = "skipped"
	outcomeOrphaned  = "orphaned"
)

// Processor consumes shipment tracking events: it enriches each event with
// the current order state from the backend and dispatches on the lifecycle
// bucket. Events for buckets with no action are skipped, never failed.
type Processor struct {
	lookup  OrderLookup
	logger  logx.Logger
	counter *prometheus.CounterVec
	factory *actionFactory
}

// NewProcessor creates a tracking Processor. The counter is labeled by
// outcome and may be nil.
func NewProcessor(lookup OrderLookup, logger logx.Logger, counter *prometheus.CounterVec) *Processor {
	p := &Processor{
		lookup:  lookup,
		logger:  logger,
		counter: counter,
	}
	p.factory = newActionFactory(p.onMoved, p.onDelivered, p.onReturned, p.onCancelled)
	return p
}

// Handle processes a single tracking event. A plain returned error means the
// event should be retried; failures that can never succeed come back wrapped
// as PermanentError so the transport drops them.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Bucket)
	if !ok {
		p.count(outcomeSkipped)
		return nil
	}

	qs, err := p.lookup.CourierQuotes(ctx, e.OrderID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		// The order is gone upstream; a retry can never succeed, so the
		// transport commits the message instead of redelivering it.
		p.logger.Warn("tracking event for unknown order",
			logx.String("order_id", e.OrderID),
			logx.String("awb", e.AWB),
		)
		p.count(outcomeOrphaned)
		return Permanent(fmt.Errorf("order %s not found upstream: %w", e.OrderID, err))
	case err != nil:
		return err
	}

	order := &qs.OrderDetails
	if order.Bucket != e.Bucket {
		p.logger.Warn("tracking event lags backend state",
			logx.String("order_id", e.OrderID),
			logx.Int("event_bucket", int(e.Bucket)),
			logx.Int("backend_bucket", int(order.Bucket)),
		)
	}
	return fn(ctx, e, order)
}

func (p *Processor) onMoved(_ context.Context, e Event, o *domain.Order) error {
	p.logger.Info("shipment moving",
		logx.String("order_id", e.OrderID),
		logx.String("awb", e.AWB),
		logx.Int("bucket", int(e.Bucket)),
		logx.Time("occurred_at", e.OccurredAt),
	)
	p.count(outcomeMoved)
	return nil
}

func (p *Processor) onDelivered(_ context.Context, e Event, o *domain.Order) error {
	p.logger.Info("shipment delivered",
		logx.String("order_id", e.OrderID),
		logx.String("awb", e.AWB),
		logx.String("reference", o.OrderReferenceID),
		logx.Time("occurred_at", e.OccurredAt),
	)
	p.count(outcomeDelivered)
	return nil
}

func (p *Processor) onReturned(_ context.Context, e Event, o *domain.Order) error {
	p.logger.Warn("shipment returned to origin",
		logx.String("order_id", e.OrderID),
		logx.String("awb", e.AWB),
		logx.String("reference", o.OrderReferenceID),
	)
	p.count(outcomeReturned)
	return nil
}

func (p *Processor) onCancelled(_ context.Context, e Event, _ *domain.Order) error {
	p.logger.Info("shipment cancelled",
		logx.String("order_id", e.OrderID),
		logx.String("awb", e.AWB),
	)
	p.count(outcomeCancelled)
	return nil
}

func (p *Processor) count(outcome string) {
	if p.counter != nil {
		p.counter.WithLabelValues(outcome).Inc()
	}
}
