package web

import (
	"encoding/json"
	"net/http"

	"billbook/internal/core"

	"github.com/go-chi/chi/v5"
)

// listPrices handles GET /api/prices.
func (h *Handler) listPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.svc.ListPrices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, prices)
}

// savePrice handles POST /api/prices. Creating and updating share one route;
// an empty docId means create.
func (h *Handler) savePrice(w http.ResponseWriter, r *http.Request) {
	var in core.PriceItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	item, err := h.svc.SavePrice(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, item)
}

// deletePrice handles DELETE /api/prices/{docID}.
func (h *Handler) deletePrice(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePrice(r.Context(), chi.URLParam(r, "docID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
