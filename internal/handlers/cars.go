package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-rental-backend/internal/db"
	"github.com/ukydev/car-rental-backend/internal/models"
)

// CarHandler handles car inventory requests
type CarHandler struct {
	cars db.CarCollection
}

// NewCarHandler creates a new car handler
func NewCarHandler(cars db.CarCollection) *CarHandler {
	return &CarHandler{cars: cars}
}

// ListCars returns all cars in the fleet.
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.FindCars(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list cars")
		writeError(w, http.StatusInternalServerError, "Failed to list cars")
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

// CreateCar adds a car to the fleet. Plate numbers must be unique; this is
// enforced by a lookup before the insert, not by a storage constraint, so
// two concurrent creates can still race past it.
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCarRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.cars.FindCarByPlate(r.Context(), req.PlateNumber)
	if err == nil {
		writeError(w, http.StatusBadRequest, "Plate number already exists")
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		log.WithError(err).Error("Failed to check plate number")
		writeError(w, http.StatusInternalServerError, "Failed to create car")
		return
	}

	car := models.Car{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PlateNumber: req.PlateNumber,
		DailyRate:   req.DailyRate,
		Available:   true,
	}
	created, err := h.cars.InsertCar(r.Context(), car)
	if err != nil {
		log.WithError(err).Error("Failed to create car")
		writeError(w, http.StatusInternalServerError, "Failed to create car")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// GetCar returns a single car by id.
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := db.ParseID(mux.Vars(r)["car_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid car_id")
		return
	}

	car, err := h.cars.FindCarByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Car not found")
			return
		}
		log.WithError(err).Error("Failed to fetch car")
		writeError(w, http.StatusInternalServerError, "Failed to fetch car")
		return
	}
	writeJSON(w, http.StatusOK, car)
}
