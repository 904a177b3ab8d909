package console_test

import (
	"context"
	"sync"

	"seller-console/internal/domain"
	"seller-console/internal/gateway/logistics"
)

// fakeGateway records calls and delegates to per-method functions; nil
// functions succeed with zero values.
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	listHubsFn      func(context.Context) ([]domain.Hub, error)
	createHubFn     func(context.Context, logistics.HubPayload) error
	updateHubFn     func(context.Context, string, logistics.UpdateHubPayload) error
	resolveFn       func(context.Context, int) (domain.Location, error)
	listOrdersFn    func(context.Context, string, int, int) ([]domain.Order, error)
	courierQuotesFn func(context.Context, string) (*domain.QuoteSet, error)
	createOrderFn   func(context.Context, logistics.OrderPayload) error
	createShipFn    func(context.Context, logistics.ShipmentPayload) error
	cancelShipFn    func(context.Context, logistics.CancelPayload) error
	manifestFn      func(context.Context, logistics.ManifestPayload) error
	updateSellerFn  func(context.Context, any) error
	dashboardFn     func(context.Context) (*domain.DashboardSummary, error)
	remittancesFn   func(context.Context) ([]domain.Remittance, error)
}

func (f *fakeGateway) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeGateway) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeGateway) count(name string) int {
	n := 0
	for _, c := range f.callList() {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeGateway) ListHubs(ctx context.Context) ([]domain.Hub, error) {
	f.record("ListHubs")
	if f.listHubsFn == nil {
		return nil, nil
	}
	return f.listHubsFn(ctx)
}

func (f *fakeGateway) CreateHub(ctx context.Context, p logistics.HubPayload) error {
	f.record("CreateHub")
	if f.createHubFn == nil {
		return nil
	}
	return f.createHubFn(ctx, p)
}

func (f *fakeGateway) UpdateHub(ctx context.Context, id string, p logistics.UpdateHubPayload) error {
	f.record("UpdateHub")
	if f.updateHubFn == nil {
		return nil
	}
	return f.updateHubFn(ctx, id, p)
}

func (f *fakeGateway) ResolvePincode(ctx context.Context, pincode int) (domain.Location, error) {
	f.record("ResolvePincode")
	if f.resolveFn == nil {
		return domain.Location{}, nil
	}
	return f.resolveFn(ctx, pincode)
}

func (f *fakeGateway) ListOrders(ctx context.Context, status string, limit, page int) ([]domain.Order, error) {
	f.record("ListOrders")
	if f.listOrdersFn == nil {
		return nil, nil
	}
	return f.listOrdersFn(ctx, status, limit, page)
}

func (f *fakeGateway) CourierQuotes(ctx context.Context, orderID string) (*domain.QuoteSet, error) {
	f.record("CourierQuotes")
	if f.courierQuotesFn == nil {
		return &domain.QuoteSet{}, nil
	}
	return f.courierQuotesFn(ctx, orderID)
}

func (f *fakeGateway) CreateOrder(ctx context.Context, p logistics.OrderPayload) error {
	f.record("CreateOrder")
	if f.createOrderFn == nil {
		return nil
	}
	return f.createOrderFn(ctx, p)
}

func (f *fakeGateway) CreateShipment(ctx context.Context, p logistics.ShipmentPayload) error {
	f.record("CreateShipment")
	if f.createShipFn == nil {
		return nil
	}
	return f.createShipFn(ctx, p)
}

func (f *fakeGateway) CancelShipment(ctx context.Context, p logistics.CancelPayload) error {
	f.record("CancelShipment")
	if f.cancelShipFn == nil {
		return nil
	}
	return f.cancelShipFn(ctx, p)
}

func (f *fakeGateway) ManifestShipment(ctx context.Context, p logistics.ManifestPayload) error {
	f.record("ManifestShipment")
	if f.manifestFn == nil {
		return nil
	}
	return f.manifestFn(ctx, p)
}

func (f *fakeGateway) UpdateSeller(ctx context.Context, body any) error {
	f.record("UpdateSeller")
	if f.updateSellerFn == nil {
		return nil
	}
	return f.updateSellerFn(ctx, body)
}

func (f *fakeGateway) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	f.record("Dashboard")
	if f.dashboardFn == nil {
		return &domain.DashboardSummary{}, nil
	}
	return f.dashboardFn(ctx)
}

func (f *fakeGateway) ListRemittances(ctx context.Context) ([]domain.Remittance, error) {
	f.record("ListRemittances")
	if f.remittancesFn == nil {
		return nil, nil
	}
	return f.remittancesFn(ctx)
}
