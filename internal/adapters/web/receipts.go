package web

import (
	"encoding/json"
	"net/http"

	"billbook/internal/app"

	"github.com/go-chi/chi/v5"
)

// listReceipts handles GET /api/companies/{docID}/receipts.
func (h *Handler) listReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.svc.ListReceipts(r.Context(), chi.URLParam(r, "docID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, receipts)
}

// createReceipt handles POST /api/receipts.
func (h *Handler) createReceipt(w http.ResponseWriter, r *http.Request) {
	var req app.ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	receipt, err := h.svc.CreateReceipt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(receipt)
}

// deleteReceipt handles DELETE /api/receipts/{docID}.
func (h *Handler) deleteReceipt(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteReceipt(r.Context(), chi.URLParam(r, "docID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
