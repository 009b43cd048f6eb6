package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-rental-backend/internal/db"
)

// InvoiceHandler serves the invoices generated at return time.
type InvoiceHandler struct {
	invoices db.InvoiceCollection
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoices db.InvoiceCollection) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// ListInvoices returns all invoices.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoices.FindInvoices(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list invoices")
		writeError(w, http.StatusInternalServerError, "Failed to list invoices")
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

// GetInvoice returns a single invoice by id.
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := db.ParseID(mux.Vars(r)["invoice_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid invoice_id")
		return
	}

	invoice, err := h.invoices.FindInvoiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Invoice not found")
			return
		}
		log.WithError(err).Error("Failed to fetch invoice")
		writeError(w, http.StatusInternalServerError, "Failed to fetch invoice")
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}
