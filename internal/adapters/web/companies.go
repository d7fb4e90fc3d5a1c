package web

import (
	"encoding/json"
	"net/http"

	"billbook/internal/core"

	"github.com/go-chi/chi/v5"
)

// listCompanies handles GET /api/companies.
func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.ListCompanies(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, companies)
}

// getCompany handles GET /api/companies/{docID}.
func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.svc.GetCompany(r.Context(), chi.URLParam(r, "docID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, company)
}

// createCompany handles POST /api/companies.
func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	var in core.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	company, err := h.svc.CreateCompany(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(company)
}

// updateCompany handles PUT /api/companies/{docID}.
func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	var in core.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	company, err := h.svc.UpdateCompany(r.Context(), chi.URLParam(r, "docID"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, company)
}

// deleteCompany handles DELETE /api/companies/{docID}.
func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCompany(r.Context(), chi.URLParam(r, "docID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
