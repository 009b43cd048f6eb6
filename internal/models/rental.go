package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rental status values
const (
	RentalStatusActive   = "active"
	RentalStatusReturned = "returned"
)

// Rental represents one rental of a car by a customer. Collection: "rental".
// CarID is a reference to the rented car, stored as its hex id.
type Rental struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CarID        string             `bson:"car_id" json:"car_id"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	StartDate    time.Time          `bson:"start_date" json:"start_date"`
	EndDate      *time.Time         `bson:"end_date" json:"end_date"`
	Status       string             `bson:"status" json:"status"` // "active" or "returned"
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// StartRentalRequest represents a request to start a rental
type StartRentalRequest struct {
	CarID        string `json:"car_id"`
	CustomerName string `json:"customer_name"`
}

// Validate checks the request fields
func (r *StartRentalRequest) Validate() error {
	if r.CarID == "" {
		return errors.New("car_id is required")
	}
	if r.CustomerName == "" {
		return errors.New("customer_name is required")
	}
	return nil
}

// ReturnRentalRequest represents a request to return a rental.
// TaxRate is optional; nil or omitted means no tax.
type ReturnRentalRequest struct {
	TaxRate *float64 `json:"tax_rate"`
}
