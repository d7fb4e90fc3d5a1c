package web

import (
	"encoding/json"
	"net/http"

	"billbook/internal/app"
)

// listNotes handles GET /api/notes.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, notes)
}

// saveNote handles POST /api/notes. One note per calendar day; posting again
// for the same date replaces the text.
func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	var req app.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	note, err := h.svc.SaveNote(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, note)
}
