package console

import (
	"context"
	"sync"
	"time"

	"seller-console/internal/auth"
	"seller-console/internal/domain"
	"seller-console/internal/logx"
	"seller-console/internal/notify"
)

const (
	defaultOperationTimeout = 5 * time.Second

	// List reads mirror the dashboard's fixed first page.
	ordersLimit = 50
	ordersPage  = 1
)

// Session is the per-token state container for one signed-in seller. It owns
// the in-memory copies of the fetched domain state; consuming components read
// snapshots and never mutate them. The backend remains the source of truth:
// mutations re-fetch the dependent lists instead of patching locally.
type Session struct {
	token    string
	gw       Gateway
	notifier notify.Notifier
	logger   logx.Logger
	timeout  time.Duration

	mu        sync.Mutex
	seller    *domain.Seller
	hubs      []domain.Hub
	orders    []domain.Order
	quotes    *domain.QuoteSet
	dashboard *domain.DashboardSummary
	draft     CustomerDraft
}

// NewSession creates a session bound to one auth token.
func NewSession(token string, gw Gateway, notifier notify.Notifier, logger logx.Logger, timeout time.Duration) *Session {
	if gw == nil {
		return nil
	}
	if notifier == nil {
		notifier = notify.Nop()
	}
	if timeout <= 0 {
		timeout = defaultOperationTimeout
	}
	return &Session{
		token:    token,
		gw:       gw,
		notifier: notifier,
		logger:   logger,
		timeout:  timeout,
	}
}

// opCtx binds the session token and the uniform operation timeout.
func (s *Session) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = auth.ContextWithToken(ctx, s.token)
	return context.WithTimeout(ctx, s.timeout)
}

// Hubs returns a snapshot of the hub list.
func (s *Session) Hubs() []domain.Hub {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Hub, len(s.hubs))
	copy(out, s.hubs)
	return out
}

// Orders returns a snapshot of the order list.
func (s *Session) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Quotes returns the last fetched courier quote set, if any.
func (s *Session) Quotes() *domain.QuoteSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quotes == nil {
		return nil
	}
	qs := *s.quotes
	return &qs
}

// Dashboard returns the last fetched dashboard summary, if any.
func (s *Session) Dashboard() *domain.DashboardSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dashboard == nil {
		return nil
	}
	d := *s.dashboard
	return &d
}

// Draft returns the pending customer draft form state.
func (s *Session) Draft() CustomerDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft replaces the pending customer draft form state.
func (s *Session) SetDraft(d CustomerDraft) {
	s.mu.Lock()
	s.draft = d
	s.mu.Unlock()
}

// RefreshHubs fetches the hub list. On success the local list is replaced;
// on failure the prior state stays and the error is only logged.
func (s *Session) RefreshHubs(ctx context.Context) []domain.Hub {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	hubs, err := s.gw.ListHubs(opCtx)
	if err != nil {
		s.logger.Error("hub refresh failed", logx.Any("err", err))
		return s.Hubs()
	}
	s.mu.Lock()
	s.hubs = hubs
	s.mu.Unlock()
	return s.Hubs()
}

// OrdersByStatus fetches orders filtered by a status tag ("all" means
// unfiltered), replaces the local list on success and returns it. On failure
// nothing is returned and the prior state stays; reads do not notify.
func (s *Session) OrdersByStatus(ctx context.Context, status string) []domain.Order {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	orders, err := s.gw.ListOrders(opCtx, status, ordersLimit, ordersPage)
	if err != nil {
		s.logger.Error("order fetch failed",
			logx.String("status", status),
			logx.Any("err", err),
		)
		return nil
	}
	if orders == nil {
		// Nil marks failure to the caller; zero orders is a valid answer.
		orders = []domain.Order{}
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return orders
}

// CourierPartners fetches the available carriers for an order and stores the
// quote set for the viewing session. Required before a shipment can be
// created for that order.
func (s *Session) CourierPartners(ctx context.Context, orderID string) *domain.QuoteSet {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	qs, err := s.gw.CourierQuotes(opCtx, orderID)
	if err != nil {
		s.logger.Error("courier quote fetch failed",
			logx.String("order_id", orderID),
			logx.Any("err", err),
		)
		return nil
	}
	s.mu.Lock()
	s.quotes = qs
	s.mu.Unlock()
	return qs
}

// Remittances fetches the seller's COD payout batches. The list is served
// straight through without being held on the session; the finance view is the
// only consumer and always wants fresh data.
func (s *Session) Remittances(ctx context.Context) []domain.Remittance {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	rs, err := s.gw.ListRemittances(opCtx)
	if err != nil {
		s.logger.Error("remittance fetch failed", logx.Any("err", err))
		return nil
	}
	if rs == nil {
		// Nil marks failure to the caller; an empty payout history is not one.
		rs = []domain.Remittance{}
	}
	return rs
}

// RefreshDashboard fetches the dashboard summary.
func (s *Session) RefreshDashboard(ctx context.Context) *domain.DashboardSummary {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	d, err := s.gw.Dashboard(opCtx)
	if err != nil {
		s.logger.Error("dashboard refresh failed", logx.Any("err", err))
		return s.Dashboard()
	}
	s.mu.Lock()
	s.dashboard = d
	s.mu.Unlock()
	return s.Dashboard()
}
