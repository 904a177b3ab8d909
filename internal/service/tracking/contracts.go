package tracking

import (
	"context"

	"seller-console/internal/domain"
)

// OrderLookup abstracts the subset of backend operations the tracking
// Processor needs to enrich an event with the current order state.
type OrderLookup interface {
	CourierQuotes(ctx context.Context, orderID string) (*domain.QuoteSet, error)
}
