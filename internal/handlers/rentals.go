package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-rental-backend/internal/billing"
	"github.com/ukydev/car-rental-backend/internal/db"
	"github.com/ukydev/car-rental-backend/internal/models"
)

// RentalHandler handles the rental lifecycle: start, listing, and return
// with invoice generation.
type RentalHandler struct {
	rentals  db.RentalCollection
	cars     db.CarCollection
	invoices db.InvoiceCollection
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentals db.RentalCollection, cars db.CarCollection, invoices db.InvoiceCollection) *RentalHandler {
	return &RentalHandler{rentals: rentals, cars: cars, invoices: invoices}
}

// ReturnRentalResponse is the body returned by a successful return.
type ReturnRentalResponse struct {
	Rental  *models.Rental  `json:"rental"`
	Invoice *models.Invoice `json:"invoice"`
}

// StartRental starts a rental against an available car. The rental insert
// and the availability flip are two separate writes with no transaction
// around them; a failure in between leaves the rental active and the car
// still marked available.
func (h *RentalHandler) StartRental(w http.ResponseWriter, r *http.Request) {
	var req models.StartRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	carID, err := db.ParseID(req.CarID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid car_id")
		return
	}

	car, err := h.cars.FindCarByID(r.Context(), carID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Car not found")
			return
		}
		log.WithError(err).Error("Failed to fetch car")
		writeError(w, http.StatusInternalServerError, "Failed to start rental")
		return
	}
	if !car.Available {
		writeError(w, http.StatusBadRequest, "Car is not available")
		return
	}

	rental := models.Rental{
		CarID:        car.ID.Hex(),
		CustomerName: req.CustomerName,
		StartDate:    time.Now().UTC(),
		Status:       models.RentalStatusActive,
	}
	created, err := h.rentals.InsertRental(r.Context(), rental)
	if err != nil {
		log.WithError(err).Error("Failed to create rental")
		writeError(w, http.StatusInternalServerError, "Failed to start rental")
		return
	}

	if err := h.cars.SetCarAvailability(r.Context(), car.ID, false); err != nil {
		log.WithError(err).Error("Failed to mark car unavailable")
		writeError(w, http.StatusInternalServerError, "Failed to start rental")
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// ListRentals returns all rentals, active and returned.
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.FindRentals(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list rentals")
		writeError(w, http.StatusInternalServerError, "Failed to list rentals")
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

// ListActiveRentals returns the rentals that have not been returned yet.
func (h *RentalHandler) ListActiveRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.FindActiveRentals(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active rentals")
		writeError(w, http.StatusInternalServerError, "Failed to list active rentals")
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

// GetRental returns a single rental by id.
func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := db.ParseID(mux.Vars(r)["rental_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rental_id")
		return
	}

	rental, err := h.rentals.FindRentalByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Rental not found")
			return
		}
		log.WithError(err).Error("Failed to fetch rental")
		writeError(w, http.StatusInternalServerError, "Failed to fetch rental")
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// ReturnRental ends an active rental: the rental gets its end date and the
// "returned" status, the car becomes available again, and an invoice is
// computed from the re-read rental and persisted. "returned" is terminal.
func (h *RentalHandler) ReturnRental(w http.ResponseWriter, r *http.Request) {
	id, err := db.ParseID(mux.Vars(r)["rental_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rental_id")
		return
	}

	var req models.ReturnRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rental, err := h.rentals.FindRentalByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Rental not found")
			return
		}
		log.WithError(err).Error("Failed to fetch rental")
		writeError(w, http.StatusInternalServerError, "Failed to return rental")
		return
	}
	if rental.Status == models.RentalStatusReturned {
		writeError(w, http.StatusBadRequest, "Rental already returned")
		return
	}

	carID, err := db.ParseID(rental.CarID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Car for rental not found")
		return
	}
	car, err := h.cars.FindCarByID(r.Context(), carID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Car for rental not found")
			return
		}
		log.WithError(err).Error("Failed to fetch car for rental")
		writeError(w, http.StatusInternalServerError, "Failed to return rental")
		return
	}

	endDate := time.Now().UTC()
	if err := h.rentals.MarkRentalReturned(r.Context(), rental.ID, endDate); err != nil {
		log.WithError(err).Error("Failed to mark rental returned")
		writeError(w, http.StatusInternalServerError, "Failed to return rental")
		return
	}
	if err := h.cars.SetCarAvailability(r.Context(), car.ID, true); err != nil {
		log.WithError(err).Error("Failed to mark car available")
		writeError(w, http.StatusInternalServerError, "Failed to return rental")
		return
	}

	// Re-read so the invoice is computed from the persisted end date.
	returned, err := h.rentals.FindRentalByID(r.Context(), rental.ID)
	if err != nil {
		log.WithError(err).Error("Failed to re-read rental")
		writeError(w, http.StatusInternalServerError, "Failed to return rental")
		return
	}

	taxRate := 0.0
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	invoice := billing.ComputeInvoice(*car, *returned, taxRate, time.Now().UTC())
	stored, err := h.invoices.InsertInvoice(r.Context(), invoice)
	if err != nil {
		log.WithError(err).Error("Failed to store invoice")
		writeError(w, http.StatusInternalServerError, "Failed to return rental")
		return
	}

	writeJSON(w, http.StatusOK, ReturnRentalResponse{Rental: returned, Invoice: stored})
}
