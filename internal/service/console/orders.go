package console

import (
	"context"
	"errors"

	"seller-console/internal/apperr"
	"seller-console/internal/gateway/logistics"
	"seller-console/internal/logx"
)

// statusAll re-reads the unfiltered order list after a mutation.
const statusAll = "all"

// CreateOrder builds the order payload from the draft (falling back to the
// session's customer form when the draft carries no customer block) and
// submits it. On success it notifies the user and re-fetches the dashboard
// summary and order list. Exactly one notification per invocation; never a
// fault to the caller.
func (s *Session) CreateOrder(ctx context.Context, draft OrderDraft) bool {
	payload, err := BuildOrderPayload(draft, s.Draft().CustomerForm)
	if err != nil {
		s.logger.Warn("order draft rejected", logx.Any("err", err))
		s.notifier.Failure("Error", "Invalid order details")
		return false
	}

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.gw.CreateOrder(opCtx, payload); err != nil {
		s.notifier.Failure("Error", failureDescription(err, "An error occurred"))
		return false
	}

	s.notifier.Success("Order created successfully", "Order has been created successfully")
	s.RefreshDashboard(ctx)
	s.OrdersByStatus(ctx, statusAll)
	return true
}

// CreateShipment books the selected carrier for an order. A populated nested
// carrier error in the backend response counts as failure even on transport
// success.
func (s *Session) CreateShipment(ctx context.Context, orderID string, carrierID int64) bool {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	p := logistics.ShipmentPayload{OrderID: orderID, CarrierID: carrierID, OrderType: 0}
	if err := s.gw.CreateShipment(opCtx, p); err != nil {
		s.notifier.Failure("Error", failureDescription(err, "Something went wrong"))
		return false
	}

	s.notifier.Success("Order created successfully", "Order has been created successfully")
	s.OrdersByStatus(ctx, statusAll)
	return true
}

// CancelOrder submits a cancellation request. A business refusal is reported
// distinctly as an already-cancelled order.
func (s *Session) CancelOrder(ctx context.Context, orderID, cancelType string) bool {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	p := logistics.CancelPayload{OrderID: orderID, Type: cancelType}
	if err := s.gw.CancelShipment(opCtx, p); err != nil {
		if errors.Is(err, apperr.ErrBusiness) {
			s.notifier.Failure("Order", "Order Already cancelled")
		} else {
			s.notifier.Failure("Error", "Something went wrong")
		}
		return false
	}

	s.notifier.Success("Order", "Order cancellation request generated")
	s.OrdersByStatus(ctx, statusAll)
	return true
}

// ManifestOrder confirms a scheduled pickup date with the carrier.
func (s *Session) ManifestOrder(ctx context.Context, orderID, scheduleDate string) bool {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	p := logistics.ManifestPayload{OrderID: orderID, PickupDate: scheduleDate}
	if err := s.gw.ManifestShipment(opCtx, p); err != nil {
		if errors.Is(err, apperr.ErrBusiness) {
			s.notifier.Failure("Order", failureDescription(err, "Something went wrong"))
		} else {
			s.notifier.Failure("Error", "Something went wrong")
		}
		return false
	}

	s.notifier.Success("Order", "Order manifested successfully")
	s.OrdersByStatus(ctx, statusAll)
	return true
}

// failureDescription prefers the backend's business message over the generic
// fallback.
func failureDescription(err error, fallback string) string {
	if msg, ok := apperr.BusinessMessage(err); ok && msg != "" {
		return msg
	}
	return fallback
}
