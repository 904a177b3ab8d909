package handlers

import (
	"embed"
	"net/http"

	"seller-console/internal/logx"
)

//go:embed assets
var assets embed.FS

// Sample import templates for the bulk order and bulk pickup-location forms.
// Signed-in pages link these directly, so they live on the gated navigation
// surface rather than under /api.
const (
	bulkOrderSampleName  = "bulk-sample.csv"
	bulkPickupSampleName = "pickup_bulk_sample.xlsx"
)

// BulkOrderSample handles GET /bulk-sample.csv.
func (h *Handlers) BulkOrderSample(w http.ResponseWriter, r *http.Request) {
	h.serveAsset(w, r, bulkOrderSampleName, "text/csv")
}

// BulkPickupSample handles GET /pickup_bulk_sample.xlsx.
func (h *Handlers) BulkPickupSample(w http.ResponseWriter, r *http.Request) {
	h.serveAsset(w, r, bulkPickupSampleName,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *Handlers) serveAsset(w http.ResponseWriter, r *http.Request, name, contentType string) {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		// Broken embed; surfaces at build normally.
		writeError(h.Logger, w, r, http.StatusInternalServerError, "asset unavailable")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Debug("asset write failed", logx.Any("err", err))
	}
}
