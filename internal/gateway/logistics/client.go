package logistics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"seller-console/internal/apperr"
	"seller-console/internal/auth"
	"seller-console/internal/domain"
	"seller-console/internal/logx"
)

// Client is a logistics backend gateway over HTTP JSON. The backend's
// response envelope is {valid, message?, ...payload}; valid != true on a 2xx
// response is a business failure, distinct from transport failure.
type Client struct {
	base   string
	http   *http.Client
	logger logx.Logger
}

// NewClient creates a logistics gateway. The timeout applies uniformly to
// every outbound request; transport may be nil for http.DefaultTransport.
func NewClient(baseURL string, timeout time.Duration, logger logx.Logger, transport http.RoundTripper) *Client {
	if strings.TrimSpace(baseURL) == "" {
		return nil
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

type envelope struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func (e envelope) businessErr() error {
	if e.Valid {
		return nil
	}
	return apperr.Business(e.Message)
}

// ListHubs fetches the seller's pickup locations.
func (c *Client) ListHubs(ctx context.Context) ([]domain.Hub, error) {
	var out struct {
		envelope
		Hubs []domain.Hub `json:"hubs"`
	}
	if err := c.do(ctx, http.MethodGet, "/hub", nil, &out); err != nil {
		return nil, fmt.Errorf("logistics gateway: ListHubs: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return nil, fmt.Errorf("logistics gateway: ListHubs: %w", err)
	}
	return out.Hubs, nil
}

// CreateHub registers a new pickup location.
func (c *Client) CreateHub(ctx context.Context, p HubPayload) error {
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/hub", p, &out); err != nil {
		return fmt.Errorf("logistics gateway: CreateHub: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return fmt.Errorf("logistics gateway: CreateHub: %w", err)
	}
	return nil
}

// UpdateHub edits an existing pickup location. The hub id travels in the URL
// path, not the body.
func (c *Client) UpdateHub(ctx context.Context, id string, p UpdateHubPayload) error {
	if strings.TrimSpace(id) == "" {
		return apperr.ErrInvalid
	}
	var out envelope
	if err := c.do(ctx, http.MethodPut, "/hub/"+url.PathEscape(id), p, &out); err != nil {
		return fmt.Errorf("logistics gateway: UpdateHub: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return fmt.Errorf("logistics gateway: UpdateHub: %w", err)
	}
	return nil
}

// ResolvePincode asks the backend for the city/state of a postal code.
func (c *Client) ResolvePincode(ctx context.Context, pincode int) (domain.Location, error) {
	var out struct {
		envelope
		City  string `json:"city"`
		State string `json:"state"`
	}
	if err := c.do(ctx, http.MethodPost, "/hub/pincode", PincodePayload{Pincode: pincode}, &out); err != nil {
		return domain.Location{}, fmt.Errorf("logistics gateway: ResolvePincode: %w", err)
	}
	if out.City == "" || out.State == "" {
		return domain.Location{}, fmt.Errorf("logistics gateway: ResolvePincode: %w", apperr.Business(out.Message))
	}
	return domain.Location{City: out.City, State: out.State}, nil
}

// ListOrders fetches orders, optionally filtered by a status tag.
// "all" (or empty) means unfiltered.
func (c *Client) ListOrders(ctx context.Context, status string, limit, page int) ([]domain.Order, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	if status != "" && status != "all" {
		q.Set("status", status)
	}
	var out struct {
		envelope
		Response struct {
			Orders []domain.Order `json:"orders"`
		} `json:"response"`
	}
	if err := c.do(ctx, http.MethodGet, "/order?"+q.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("logistics gateway: ListOrders: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return nil, fmt.Errorf("logistics gateway: ListOrders: %w", err)
	}
	return out.Response.Orders, nil
}

// CourierQuotes fetches the available carriers for an order.
func (c *Client) CourierQuotes(ctx context.Context, orderID string) (*domain.QuoteSet, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, apperr.ErrInvalid
	}
	var out struct {
		envelope
		domain.QuoteSet
	}
	if err := c.do(ctx, http.MethodGet, "/order/courier/b2c/"+url.PathEscape(orderID), nil, &out); err != nil {
		return nil, fmt.Errorf("logistics gateway: CourierQuotes: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return nil, fmt.Errorf("logistics gateway: CourierQuotes: %w", err)
	}
	qs := out.QuoteSet
	return &qs, nil
}

// CreateOrder submits a new B2C order.
func (c *Client) CreateOrder(ctx context.Context, p OrderPayload) error {
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/order/b2c", p, &out); err != nil {
		return fmt.Errorf("logistics gateway: CreateOrder: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return fmt.Errorf("logistics gateway: CreateOrder: %w", err)
	}
	return nil
}

// CreateShipment books a carrier for an order. A populated carrier error in
// the nested response is a business failure even when the HTTP call and the
// envelope both report success.
func (c *Client) CreateShipment(ctx context.Context, p ShipmentPayload) error {
	var out struct {
		envelope
		Shipment struct {
			Response struct {
				Data struct {
					Errors json.RawMessage `json:"errors"`
				} `json:"data"`
			} `json:"response"`
		} `json:"shipment"`
	}
	if err := c.do(ctx, http.MethodPost, "/shipment", p, &out); err != nil {
		return fmt.Errorf("logistics gateway: CreateShipment: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return fmt.Errorf("logistics gateway: CreateShipment: %w", err)
	}
	if errs := out.Shipment.Response.Data.Errors; len(errs) > 0 && !bytes.Equal(errs, []byte("null")) {
		return fmt.Errorf("logistics gateway: CreateShipment: %w", apperr.Business(out.Message))
	}
	return nil
}

// CancelShipment requests cancellation of an order or its shipment.
func (c *Client) CancelShipment(ctx context.Context, p CancelPayload) error {
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/shipment/cancel", p, &out); err != nil {
		return fmt.Errorf("logistics gateway: CancelShipment: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return fmt.Errorf("logistics gateway: CancelShipment: %w", err)
	}
	return nil
}

// ManifestShipment confirms a scheduled pickup date with the carrier.
func (c *Client) ManifestShipment(ctx context.Context, p ManifestPayload) error {
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/shipment/manifest", p, &out); err != nil {
		return fmt.Errorf("logistics gateway: ManifestShipment: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return fmt.Errorf("logistics gateway: ManifestShipment: %w", err)
	}
	return nil
}

// UpdateSeller PUTs one seller field group. The body must be one of the
// *Body wrappers so exactly one named sub-object is sent.
func (c *Client) UpdateSeller(ctx context.Context, body any) error {
	var out envelope
	if err := c.do(ctx, http.MethodPut, "/seller", body, &out); err != nil {
		return fmt.Errorf("logistics gateway: UpdateSeller: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return fmt.Errorf("logistics gateway: UpdateSeller: %w", err)
	}
	return nil
}

// ListRemittances fetches the seller's COD payout batches.
func (c *Client) ListRemittances(ctx context.Context) ([]domain.Remittance, error) {
	var out struct {
		envelope
		Remittances []domain.Remittance `json:"remittanceOrders"`
	}
	if err := c.do(ctx, http.MethodGet, "/seller/remittance", nil, &out); err != nil {
		return nil, fmt.Errorf("logistics gateway: ListRemittances: %w", err)
	}
	if err := out.businessErr(); err != nil {
		return nil, fmt.Errorf("logistics gateway: ListRemittances: %w", err)
	}
	return out.Remittances, nil
}

// Dashboard fetches the seller dashboard summary. The backend serves this
// endpoint without the usual envelope.
func (c *Client) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/shipment/dashboard", nil, &out); err != nil {
		return nil, fmt.Errorf("logistics gateway: Dashboard: %w", err)
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := auth.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Debug("response body close failed", logx.Any("err", cerr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperr.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return apperr.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
