package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes to their handlers.
func NewRouter(cars *CarHandler, rentals *RentalHandler, invoices *InvoiceHandler, status *StatusHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", status.Root).Methods(http.MethodGet)
	r.HandleFunc("/test", status.Test).Methods(http.MethodGet)

	r.HandleFunc("/api/cars", cars.ListCars).Methods(http.MethodGet)
	r.HandleFunc("/api/cars", cars.CreateCar).Methods(http.MethodPost)
	r.HandleFunc("/api/cars/{car_id}", cars.GetCar).Methods(http.MethodGet)

	r.HandleFunc("/api/rentals/start", rentals.StartRental).Methods(http.MethodPost)
	r.HandleFunc("/api/rentals", rentals.ListRentals).Methods(http.MethodGet)
	r.HandleFunc("/api/rentals/active", rentals.ListActiveRentals).Methods(http.MethodGet)
	r.HandleFunc("/api/rentals/{rental_id}", rentals.GetRental).Methods(http.MethodGet)
	r.HandleFunc("/api/rentals/{rental_id}/return", rentals.ReturnRental).Methods(http.MethodPost)

	r.HandleFunc("/api/invoices", invoices.ListInvoices).Methods(http.MethodGet)
	r.HandleFunc("/api/invoices/{invoice_id}", invoices.GetInvoice).Methods(http.MethodGet)

	return r
}
