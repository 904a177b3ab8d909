package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"seller-console/internal/auth"
	"seller-console/internal/domain"
	"seller-console/internal/service/console"
)

// session resolves the caller's console session from the request token. The
// boolean is false when the request carries no token; the 401 is already
// written in that case.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*console.Session, bool) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		writeError(h.Logger, w, r, http.StatusUnauthorized, "not signed in")
		return nil, false
	}
	return h.Sessions.Session(token), true
}

type okResponse struct {
	OK bool `json:"ok"`
}

// Mutations never fault to the caller; the outcome detail lands in the
// notification feed and the body carries only the ok flag.
func (h *Handlers) writeOutcome(w http.ResponseWriter, r *http.Request, ok bool) {
	writeJSON(h.Logger, w, r, http.StatusOK, okResponse{OK: ok})
}

// ListHubs handles GET /api/hubs.
func (h *Handlers) ListHubs(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	hubs := s.RefreshHubs(r.Context())
	if hubs == nil {
		hubs = []domain.Hub{}
	}
	writeJSON(h.Logger, w, r, http.StatusOK, hubs)
}

// CreateHub handles POST /api/hubs.
func (h *Handlers) CreateHub(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var draft console.HubDraft
	if !decodeJSON(h.Logger, w, r, &draft) {
		return
	}
	h.writeOutcome(w, r, s.CreateHub(r.Context(), draft))
}

// UpdateHub handles PUT /api/hubs/{id}.
func (h *Handlers) UpdateHub(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(h.Logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var draft console.PickupLocationDraft
	if !decodeJSON(h.Logger, w, r, &draft) {
		return
	}
	h.writeOutcome(w, r, s.UpdateHub(r.Context(), id, draft))
}

type pincodeRequest struct {
	Pincode string `json:"pincode"`
}

// ResolvePincode handles POST /api/pincode. The response always carries a
// city/state pair; unresolvable codes yield the placeholder pair.
func (h *Handlers) ResolvePincode(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req pincodeRequest
	if !decodeJSON(h.Logger, w, r, &req) {
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, s.ResolveLocation(r.Context(), req.Pincode))
}

// ListOrders handles GET /api/orders?status=. An absent status means the
// unfiltered list.
func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "all"
	}
	orders := s.OrdersByStatus(r.Context(), status)
	if orders == nil {
		// The session keeps reads quiet; surface the upstream fault here.
		writeError(h.Logger, w, r, http.StatusBadGateway, "order fetch failed")
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, orders)
}

// CourierQuotes handles GET /api/orders/{id}/couriers.
func (h *Handlers) CourierQuotes(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(h.Logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	qs := s.CourierPartners(r.Context(), id)
	if qs == nil {
		writeError(h.Logger, w, r, http.StatusBadGateway, "courier quote fetch failed")
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, qs)
}

// CreateOrder handles POST /api/orders.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var draft console.OrderDraft
	if !decodeJSON(h.Logger, w, r, &draft) {
		return
	}
	h.writeOutcome(w, r, s.CreateOrder(r.Context(), draft))
}

type createShipmentRequest struct {
	OrderID   string `json:"orderId"`
	CarrierID int64  `json:"carrierId"`
}

// CreateShipment handles POST /api/shipments.
func (h *Handlers) CreateShipment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req createShipmentRequest
	if !decodeJSON(h.Logger, w, r, &req) {
		return
	}
	if req.OrderID == "" {
		writeError(h.Logger, w, r, http.StatusBadRequest, "orderId required")
		return
	}
	h.writeOutcome(w, r, s.CreateShipment(r.Context(), req.OrderID, req.CarrierID))
}

type cancelShipmentRequest struct {
	OrderID string `json:"orderId"`
	Type    string `json:"type"`
}

// CancelShipment handles POST /api/shipments/cancel.
func (h *Handlers) CancelShipment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req cancelShipmentRequest
	if !decodeJSON(h.Logger, w, r, &req) {
		return
	}
	if req.OrderID == "" {
		writeError(h.Logger, w, r, http.StatusBadRequest, "orderId required")
		return
	}
	h.writeOutcome(w, r, s.CancelOrder(r.Context(), req.OrderID, req.Type))
}

type manifestShipmentRequest struct {
	OrderID    string `json:"orderId"`
	PickupDate string `json:"pickupDate"`
}

// ManifestShipment handles POST /api/shipments/manifest.
func (h *Handlers) ManifestShipment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req manifestShipmentRequest
	if !decodeJSON(h.Logger, w, r, &req) {
		return
	}
	if req.OrderID == "" {
		writeError(h.Logger, w, r, http.StatusBadRequest, "orderId required")
		return
	}
	h.writeOutcome(w, r, s.ManifestOrder(r.Context(), req.OrderID, req.PickupDate))
}

// UpdateCompanyProfile handles PUT /api/seller/company-profile.
func (h *Handlers) UpdateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var draft console.CompanyProfileDraft
	if !decodeJSON(h.Logger, w, r, &draft) {
		return
	}
	h.writeOutcome(w, r, s.UpdateCompanyProfile(r.Context(), draft))
}

// UpdateBankDetails handles PUT /api/seller/bank-details.
func (h *Handlers) UpdateBankDetails(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var d domain.BankDetails
	if !decodeJSON(h.Logger, w, r, &d) {
		return
	}
	h.writeOutcome(w, r, s.UpdateBankDetails(r.Context(), d))
}

// UpdateBillingAddress handles PUT /api/seller/billing-address.
func (h *Handlers) UpdateBillingAddress(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var d domain.BillingAddress
	if !decodeJSON(h.Logger, w, r, &d) {
		return
	}
	h.writeOutcome(w, r, s.UpdateBillingAddress(r.Context(), d))
}

// UpdateGSTInvoice handles PUT /api/seller/gst-invoice.
func (h *Handlers) UpdateGSTInvoice(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var d domain.GSTInvoice
	if !decodeJSON(h.Logger, w, r, &d) {
		return
	}
	h.writeOutcome(w, r, s.UpdateGSTInvoice(r.Context(), d))
}

// Dashboard handles GET /api/dashboard.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	d := s.RefreshDashboard(r.Context())
	if d == nil {
		writeError(h.Logger, w, r, http.StatusBadGateway, "dashboard fetch failed")
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, d)
}

// ListRemittances handles GET /api/remittances for the finance view.
func (h *Handlers) ListRemittances(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	rs := s.Remittances(r.Context())
	if rs == nil {
		writeError(h.Logger, w, r, http.StatusBadGateway, "remittance fetch failed")
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, rs)
}

// GetDraft handles GET /api/draft with the pending customer form state.
func (h *Handlers) GetDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, s.Draft())
}

// PutDraft handles PUT /api/draft, replacing the pending customer form state.
func (h *Handlers) PutDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var d console.CustomerDraft
	if !decodeJSON(h.Logger, w, r, &d) {
		return
	}
	s.SetDraft(d)
	w.WriteHeader(http.StatusNoContent)
}

// Logout handles POST /api/logout. The session is dropped so the next
// sign-in starts from a clean fetch, and the cookie is expired.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := auth.TokenFromContext(r.Context()); ok {
		h.Sessions.Drop(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}
