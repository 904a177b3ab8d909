package tracking

import (
	"time"

	"seller-console/internal/domain"
)

// Event is a single shipment tracking update from the carrier feed.
type Event struct {
	OrderID    string        `json:"order_id"`
	AWB        string        `json:"awb"`
	Bucket     domain.Bucket `json:"bucket"`
	OccurredAt time.Time     `json:"occurred_at"`
}
