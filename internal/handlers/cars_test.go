package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ukydev/car-rental-backend/internal/db"
	"github.com/ukydev/car-rental-backend/internal/models"
)

func carRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(models.CreateCarRequest{
		Make:        "Toyota",
		Model:       "Corolla",
		Year:        2022,
		PlateNumber: "ABC-123",
		DailyRate:   45,
	})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestCarHandler_CreateCar(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		mockCars := new(MockCarCollection)
		handler := NewCarHandler(mockCars)

		created := &models.Car{
			ID:          primitive.NewObjectID(),
			Make:        "Toyota",
			Model:       "Corolla",
			Year:        2022,
			PlateNumber: "ABC-123",
			DailyRate:   45,
			Available:   true,
			CreatedAt:   time.Now().UTC(),
		}
		mockCars.On("FindCarByPlate", mock.Anything, "ABC-123").Return(nil, db.ErrNotFound)
		mockCars.On("InsertCar", mock.Anything, mock.AnythingOfType("models.Car")).Return(created, nil)

		req := httptest.NewRequest("POST", "/api/cars", carRequestBody(t))
		w := httptest.NewRecorder()
		handler.CreateCar(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.Car
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
		assert.True(t, got.Available)
		mockCars.AssertExpectations(t)
	})

	t.Run("new cars start available", func(t *testing.T) {
		mockCars := new(MockCarCollection)
		handler := NewCarHandler(mockCars)

		mockCars.On("FindCarByPlate", mock.Anything, "ABC-123").Return(nil, db.ErrNotFound)
		mockCars.On("InsertCar", mock.Anything, mock.MatchedBy(func(c models.Car) bool {
			return c.Available
		})).Return(&models.Car{ID: primitive.NewObjectID(), Available: true}, nil)

		req := httptest.NewRequest("POST", "/api/cars", carRequestBody(t))
		w := httptest.NewRecorder()
		handler.CreateCar(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockCars.AssertExpectations(t)
	})

	t.Run("duplicate plate number", func(t *testing.T) {
		mockCars := new(MockCarCollection)
		handler := NewCarHandler(mockCars)

		existing := &models.Car{ID: primitive.NewObjectID(), PlateNumber: "ABC-123"}
		mockCars.On("FindCarByPlate", mock.Anything, "ABC-123").Return(existing, nil)

		req := httptest.NewRequest("POST", "/api/cars", carRequestBody(t))
		w := httptest.NewRecorder()
		handler.CreateCar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Plate number already exists")
		mockCars.AssertNotCalled(t, "InsertCar", mock.Anything, mock.Anything)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		handler := NewCarHandler(new(MockCarCollection))

		req := httptest.NewRequest("POST", "/api/cars", bytes.NewBufferString("{bad json"))
		w := httptest.NewRecorder()
		handler.CreateCar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("year out of range", func(t *testing.T) {
		handler := NewCarHandler(new(MockCarCollection))

		body, _ := json.Marshal(models.CreateCarRequest{
			Make: "Toyota", Model: "Corolla", Year: 1850, PlateNumber: "ABC-123", DailyRate: 45,
		})
		req := httptest.NewRequest("POST", "/api/cars", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.CreateCar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCarHandler_ListCars(t *testing.T) {
	mockCars := new(MockCarCollection)
	handler := NewCarHandler(mockCars)

	cars := []models.Car{
		{ID: primitive.NewObjectID(), Make: "Toyota", Available: true},
		{ID: primitive.NewObjectID(), Make: "Honda", Available: false},
	}
	mockCars.On("FindCars", mock.Anything).Return(cars, nil)

	req := httptest.NewRequest("GET", "/api/cars", nil)
	w := httptest.NewRecorder()
	handler.ListCars(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Car
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestCarHandler_GetCar(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockCars := new(MockCarCollection)
		handler := NewCarHandler(mockCars)

		car := &models.Car{ID: primitive.NewObjectID(), Make: "Toyota"}
		mockCars.On("FindCarByID", mock.Anything, car.ID).Return(car, nil)

		w := doGet(t, handler.GetCar, "/api/cars/"+car.ID.Hex(), map[string]string{"car_id": car.ID.Hex()})

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.Car
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, car.ID, got.ID)
	})

	t.Run("invalid id", func(t *testing.T) {
		handler := NewCarHandler(new(MockCarCollection))

		w := doGet(t, handler.GetCar, "/api/cars/not-an-id", map[string]string{"car_id": "not-an-id"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid car_id")
	})

	t.Run("not found", func(t *testing.T) {
		mockCars := new(MockCarCollection)
		handler := NewCarHandler(mockCars)

		id := primitive.NewObjectID()
		mockCars.On("FindCarByID", mock.Anything, id).Return(nil, db.ErrNotFound)

		w := doGet(t, handler.GetCar, "/api/cars/"+id.Hex(), map[string]string{"car_id": id.Hex()})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Car not found")
	})
}
