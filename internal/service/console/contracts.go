package console

import (
	"context"

	"seller-console/internal/domain"
	"seller-console/internal/gateway/logistics"
)

// Gateway abstracts the logistics backend operations the console needs.
// The backend stays the source of truth: every mutation here is followed by a
// fresh read of the dependent lists, never a local patch.
type Gateway interface {
	ListHubs(ctx context.Context) ([]domain.Hub, error)
	CreateHub(ctx context.Context, p logistics.HubPayload) error
	UpdateHub(ctx context.Context, id string, p logistics.UpdateHubPayload) error
	ResolvePincode(ctx context.Context, pincode int) (domain.Location, error)
	ListOrders(ctx context.Context, status string, limit, page int) ([]domain.Order, error)
	CourierQuotes(ctx context.Context, orderID string) (*domain.QuoteSet, error)
	CreateOrder(ctx context.Context, p logistics.OrderPayload) error
	CreateShipment(ctx context.Context, p logistics.ShipmentPayload) error
	CancelShipment(ctx context.Context, p logistics.CancelPayload) error
	ManifestShipment(ctx context.Context, p logistics.ManifestPayload) error
	UpdateSeller(ctx context.Context, body any) error
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
	ListRemittances(ctx context.Context) ([]domain.Remittance, error)
}
