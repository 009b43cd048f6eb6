package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ukydev/car-rental-backend/internal/models"
)

// doGet invokes a handler for a GET request with the given mux path variables.
func doGet(t *testing.T, handler http.HandlerFunc, target string, vars map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := mux.SetURLVars(httptest.NewRequest("GET", target, nil), vars)
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

// MockCarCollection is a mock implementation of db.CarCollection
type MockCarCollection struct {
	mock.Mock
}

func (m *MockCarCollection) InsertCar(ctx context.Context, car models.Car) (*models.Car, error) {
	args := m.Called(ctx, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarCollection) FindCars(ctx context.Context) ([]models.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarCollection) FindCarByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarCollection) FindCarByPlate(ctx context.Context, plateNumber string) (*models.Car, error) {
	args := m.Called(ctx, plateNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarCollection) SetCarAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

// MockRentalCollection is a mock implementation of db.RentalCollection
type MockRentalCollection struct {
	mock.Mock
}

func (m *MockRentalCollection) InsertRental(ctx context.Context, rental models.Rental) (*models.Rental, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}

func (m *MockRentalCollection) FindRentals(ctx context.Context) ([]models.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rental), args.Error(1)
}

func (m *MockRentalCollection) FindActiveRentals(ctx context.Context) ([]models.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rental), args.Error(1)
}

func (m *MockRentalCollection) FindRentalByID(ctx context.Context, id primitive.ObjectID) (*models.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}

func (m *MockRentalCollection) MarkRentalReturned(ctx context.Context, id primitive.ObjectID, endDate time.Time) error {
	args := m.Called(ctx, id, endDate)
	return args.Error(0)
}

// MockInvoiceCollection is a mock implementation of db.InvoiceCollection
type MockInvoiceCollection struct {
	mock.Mock
}

func (m *MockInvoiceCollection) InsertInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceCollection) FindInvoices(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *MockInvoiceCollection) FindInvoiceByID(ctx context.Context, id primitive.ObjectID) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

// MockDiagnostics is a mock implementation of Diagnostics
type MockDiagnostics struct {
	mock.Mock
}

func (m *MockDiagnostics) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDiagnostics) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
