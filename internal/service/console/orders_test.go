package console_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"seller-console/internal/apperr"
	"seller-console/internal/domain"
	"seller-console/internal/gateway/logistics"
	"seller-console/internal/notify"
	"seller-console/internal/service/console"
	testlog "seller-console/internal/testutil"
)

func newTestSession(t *testing.T, gw console.Gateway) (*console.Session, *notify.Recorder, *testlog.Recorder) {
	t.Helper()
	rec := notify.NewRecorder()
	logs := testlog.New()
	s := console.NewSession("tok-1", gw, rec, logs.Logger(), 0)
	require.NotNil(t, s)
	return s, rec, logs
}

func TestCreateOrder_SuccessRefetches(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{
		listOrdersFn: func(_ context.Context, status string, limit, page int) ([]domain.Order, error) {
			require.Equal(t, "all", status)
			require.Equal(t, 50, limit)
			require.Equal(t, 1, page)
			return []domain.Order{{ID: "o1"}, {ID: "o2"}}, nil
		},
	}
	s, rec, _ := newTestSession(t, gw)

	ok := s.CreateOrder(context.Background(), validOrderDraft())
	require.True(t, ok)

	// Exactly one notification, then the dependent state is re-read from the
	// backend rather than patched locally.
	require.Len(t, rec.All(), 1)
	require.Len(t, rec.Successes(), 1)
	require.Equal(t, []string{"CreateOrder", "Dashboard", "ListOrders"}, gw.callList())
	require.Len(t, s.Orders(), 2)
}

func TestCreateOrder_InvalidDraftSkipsGateway(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	s, rec, logs := newTestSession(t, gw)

	d := validOrderDraft()
	d.OrderWeight = "heavy"
	ok := s.CreateOrder(context.Background(), d)

	require.False(t, ok)
	require.Empty(t, gw.callList())
	require.Len(t, rec.All(), 1)
	require.Equal(t, "Invalid order details", rec.Failures()[0].Description)
	require.True(t, logs.HasMsg("order draft rejected"))
}

func TestCreateOrder_BusinessFailureMessage(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{
		createOrderFn: func(context.Context, logistics.OrderPayload) error {
			return apperr.Business("Order reference already exists")
		},
	}
	s, rec, _ := newTestSession(t, gw)

	ok := s.CreateOrder(context.Background(), validOrderDraft())
	require.False(t, ok)
	require.Len(t, rec.All(), 1)
	require.Equal(t, "Order reference already exists", rec.Failures()[0].Description)
	// A failed mutation refreshes nothing.
	require.Equal(t, []string{"CreateOrder"}, gw.callList())
}

func TestCreateOrder_UsesSessionDraftFallback(t *testing.T) {
	t.Parallel()

	var got logistics.OrderPayload
	gw := &fakeGateway{
		createOrderFn: func(_ context.Context, p logistics.OrderPayload) error {
			got = p
			return nil
		},
	}
	s, _, _ := newTestSession(t, gw)
	s.SetDraft(console.CustomerDraft{CustomerForm: console.CustomerFormDraft{
		Name:    "Ravi",
		Phone:   "8888888888",
		Pincode: "110001",
	}})

	d := validOrderDraft()
	d.Customer = nil
	require.True(t, s.CreateOrder(context.Background(), d))
	require.Equal(t, "Ravi", got.CustomerDetails.Name)
}

func TestCreateShipment_NestedCarrierError(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{
		createShipFn: func(_ context.Context, p logistics.ShipmentPayload) error {
			require.Equal(t, "o1", p.OrderID)
			require.Equal(t, int64(42), p.CarrierID)
			require.Equal(t, 0, p.OrderType)
			return apperr.Business("carrier rejected the booking")
		},
	}
	s, rec, _ := newTestSession(t, gw)

	ok := s.CreateShipment(context.Background(), "o1", 42)
	require.False(t, ok)
	require.Len(t, rec.Failures(), 1)
	require.Equal(t, "carrier rejected the booking", rec.Failures()[0].Description)
}

func TestCreateShipment_Success(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	s, rec, _ := newTestSession(t, gw)

	require.True(t, s.CreateShipment(context.Background(), "o1", 42))
	require.Len(t, rec.Successes(), 1)
	require.Equal(t, 1, gw.count("ListOrders"))
}

func TestCancelOrder_AlreadyCancelled(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{
		cancelShipFn: func(context.Context, logistics.CancelPayload) error {
			return apperr.Business("already cancelled upstream")
		},
	}
	s, rec, _ := newTestSession(t, gw)

	require.False(t, s.CancelOrder(context.Background(), "o1", "b2c"))
	require.Len(t, rec.All(), 1)
	require.Equal(t, "Order", rec.Failures()[0].Title)
	require.Equal(t, "Order Already cancelled", rec.Failures()[0].Description)
}

func TestCancelOrder_TransportFailure(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{
		cancelShipFn: func(context.Context, logistics.CancelPayload) error {
			return context.DeadlineExceeded
		},
	}
	s, rec, _ := newTestSession(t, gw)

	require.False(t, s.CancelOrder(context.Background(), "o1", "b2c"))
	require.Equal(t, "Error", rec.Failures()[0].Title)
	require.Equal(t, "Something went wrong", rec.Failures()[0].Description)
}

func TestCancelOrder_Success(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	s, rec, _ := newTestSession(t, gw)

	require.True(t, s.CancelOrder(context.Background(), "o1", "b2c"))
	require.Len(t, rec.Successes(), 1)
	require.Equal(t, "Order cancellation request generated", rec.Successes()[0].Description)
	require.Equal(t, []string{"CancelShipment", "ListOrders"}, gw.callList())
}

func TestManifestOrder(t *testing.T) {
	t.Parallel()

	var got logistics.ManifestPayload
	gw := &fakeGateway{
		manifestFn: func(_ context.Context, p logistics.ManifestPayload) error {
			got = p
			return nil
		},
	}
	s, rec, _ := newTestSession(t, gw)

	require.True(t, s.ManifestOrder(context.Background(), "o1", "2024-03-05"))
	require.Equal(t, "o1", got.OrderID)
	require.Equal(t, "2024-03-05", got.PickupDate)
	require.Equal(t, "Order manifested successfully", rec.Successes()[0].Description)
}

func TestOrdersByStatus_EmptyListIsNotAFailure(t *testing.T) {
	t.Parallel()

	// A backend with zero orders may decode to a nil slice; only an error
	// marks failure.
	gw := &fakeGateway{}
	s, _, logs := newTestSession(t, gw)

	orders := s.OrdersByStatus(context.Background(), "all")
	require.NotNil(t, orders)
	require.Empty(t, orders)
	require.False(t, logs.HasMsg("order fetch failed"))
}

func TestOrdersByStatus_FailureKeepsPriorState(t *testing.T) {
	t.Parallel()

	fail := false
	gw := &fakeGateway{
		listOrdersFn: func(context.Context, string, int, int) ([]domain.Order, error) {
			if fail {
				return nil, context.DeadlineExceeded
			}
			return []domain.Order{{ID: "o1"}}, nil
		},
	}
	s, rec, logs := newTestSession(t, gw)

	require.Len(t, s.OrdersByStatus(context.Background(), "all"), 1)

	fail = true
	require.Nil(t, s.OrdersByStatus(context.Background(), "delivered"))
	// Reads fail silently: prior state survives, no notification, one log.
	require.Len(t, s.Orders(), 1)
	require.Empty(t, rec.All())
	require.True(t, logs.HasMsg("order fetch failed"))
}
