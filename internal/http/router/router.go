package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seller-console/internal/auth"
	"seller-console/internal/http/handlers"
	mw "seller-console/internal/http/middleware"
	"seller-console/internal/http/middleware/accessgate"
	"seller-console/internal/http/middleware/ratelimit"
	"seller-console/internal/http/pprofserver"
)

// New constructs the chi router: base middleware, the gated navigation
// surface, the /api endpoints and the operational endpoints. The access gate
// wraps only the navigation routes; the API answers 401 itself and is the
// only surface under the rate limiter.
func New(h *handlers.Handlers, gate *accessgate.Middleware, limit *ratelimit.Middleware, pprofCfg pprofserver.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Observability(h.Logger))
	r.Use(chimw.Timeout(15 * time.Second))
	r.Use(auth.Middleware())

	// Set before the /api subrouter is mounted so it inherits the JSON 404.
	r.NotFound(http.HandlerFunc(h.NotFound))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/debug", pprofserver.Handler(pprofCfg))

	r.Group(func(r chi.Router) {
		r.Use(gate.Handler())

		r.Get("/", h.Page("home"))
		r.Get("/login", h.Page("login"))
		r.Get("/signup", h.Page("signup"))
		r.Get("/forgot-password", h.Page("forgot-password"))
		r.Get("/reset-password", h.Page("reset-password"))
		r.Get("/dashboard", h.Page("dashboard"))
		r.Get("/new", h.Page("new"))
		r.Get("/orders", h.Page("orders"))
		r.Get("/settings", h.Page("settings"))
		r.Get("/track", h.Page("track"))
		r.Get("/rate-calc", h.Page("rate-calc"))
		r.Get("/print", h.Page("print"))
		r.Get("/admin", h.Page("admin"))
		r.Get("/finance", h.Page("finance"))
		r.Get("/bulk-sample.csv", h.BulkOrderSample)
		r.Get("/pickup_bulk_sample.xlsx", h.BulkPickupSample)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(limit.Handler())

		r.Get("/hubs", h.ListHubs)
		r.Post("/hubs", h.CreateHub)
		r.Put("/hubs/{id}", h.UpdateHub)
		r.Post("/pincode", h.ResolvePincode)

		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/{id}/couriers", h.CourierQuotes)

		r.Post("/shipments", h.CreateShipment)
		r.Post("/shipments/cancel", h.CancelShipment)
		r.Post("/shipments/manifest", h.ManifestShipment)

		r.Put("/seller/company-profile", h.UpdateCompanyProfile)
		r.Put("/seller/bank-details", h.UpdateBankDetails)
		r.Put("/seller/billing-address", h.UpdateBillingAddress)
		r.Put("/seller/gst-invoice", h.UpdateGSTInvoice)

		r.Get("/dashboard", h.Dashboard)
		r.Get("/remittances", h.ListRemittances)
		r.Get("/draft", h.GetDraft)
		r.Put("/draft", h.PutDraft)
		r.Get("/notifications", h.Notifications)
		r.Post("/logout", h.Logout)
	})

	return r
}
