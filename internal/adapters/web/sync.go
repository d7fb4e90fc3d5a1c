package web

import (
	"net/http"
)

// pullCompanies handles POST /api/sync/pull/companies.
func (h *Handler) pullCompanies(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.PullCompanies(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// pullPrices handles POST /api/sync/pull/prices.
func (h *Handler) pullPrices(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.PullPrices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// syncCompanies handles POST /api/sync/push/companies.
func (h *Handler) syncCompanies(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SyncCompanies(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
