package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// getStatement handles GET /api/companies/{docID}/statement?from=&to=.
// Both bounds are required, YYYY-MM-DD, inclusive.
func (h *Handler) getStatement(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, r, "from and to query parameters are required", "VALIDATION", http.StatusBadRequest)
		return
	}
	statement, err := h.svc.GetStatement(r.Context(), chi.URLParam(r, "docID"), from, to)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, statement)
}
