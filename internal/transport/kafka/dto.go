package kafka

import (
	"strings"
	"time"

	"seller-console/internal/domain"
	"seller-console/internal/service/tracking"
)

// EventDTO is the wire shape of a shipment tracking message.
type EventDTO struct {
	OrderID    string    `json:"order_id"`
	AWB        string    `json:"awb"`
	Bucket     int       `json:"bucket"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts an EventDTO to a tracking.Event.
func ToDomain(dto EventDTO) tracking.Event {
	return tracking.Event{
		OrderID:    strings.TrimSpace(dto.OrderID),
		AWB:        strings.TrimSpace(dto.AWB),
		Bucket:     domain.Bucket(dto.Bucket),
		OccurredAt: dto.OccurredAt,
	}
}
