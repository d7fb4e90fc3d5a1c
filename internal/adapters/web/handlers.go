package web

import (
	"net/http"

	"billbook/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Companies ─────────────────────────────────────────────────────────────
	r.Get("/api/companies", h.listCompanies)
	r.Post("/api/companies", h.createCompany)
	r.Get("/api/companies/{docID}", h.getCompany)
	r.Put("/api/companies/{docID}", h.updateCompany)
	r.Delete("/api/companies/{docID}", h.deleteCompany)

	// ── Price list ────────────────────────────────────────────────────────────
	r.Get("/api/prices", h.listPrices)
	r.Post("/api/prices", h.savePrice)
	r.Delete("/api/prices/{docID}", h.deletePrice)

	// ── Bills ─────────────────────────────────────────────────────────────────
	r.Get("/api/companies/{docID}/invoices", h.listInvoices)
	r.Post("/api/invoices", h.createInvoice)
	r.Put("/api/invoices/{docID}", h.updateInvoice)
	r.Delete("/api/invoices/{docID}", h.deleteInvoice)

	// ── Receipts ──────────────────────────────────────────────────────────────
	r.Get("/api/companies/{docID}/receipts", h.listReceipts)
	r.Post("/api/receipts", h.createReceipt)
	r.Delete("/api/receipts/{docID}", h.deleteReceipt)

	// ── Sync ──────────────────────────────────────────────────────────────────
	r.Post("/api/sync/pull/companies", h.pullCompanies)
	r.Post("/api/sync/pull/prices", h.pullPrices)
	r.Post("/api/sync/push/companies", h.syncCompanies)

	// ── Ledger statement ──────────────────────────────────────────────────────
	r.Get("/api/companies/{docID}/statement", h.getStatement)

	// ── Notes ─────────────────────────────────────────────────────────────────
	r.Get("/api/notes", h.listNotes)
	r.Post("/api/notes", h.saveNote)

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// health handles GET /api/health.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
