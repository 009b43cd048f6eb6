package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car represents a car available for rent. Collection: "car".
type Car struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Make        string             `bson:"make" json:"make"`
	Model       string             `bson:"model" json:"model"`
	Year        int                `bson:"year" json:"year"`
	PlateNumber string             `bson:"plate_number" json:"plate_number"`
	DailyRate   float64            `bson:"daily_rate" json:"daily_rate"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateCarRequest represents a request to add a car to the fleet
type CreateCarRequest struct {
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PlateNumber string  `json:"plate_number"`
	DailyRate   float64 `json:"daily_rate"`
}

// Validate checks the request fields against the car schema constraints
func (r *CreateCarRequest) Validate() error {
	if r.Make == "" {
		return errors.New("make is required")
	}
	if r.Model == "" {
		return errors.New("model is required")
	}
	if r.Year < 1900 || r.Year > 2100 {
		return errors.New("year must be between 1900 and 2100")
	}
	if r.PlateNumber == "" {
		return errors.New("plate_number is required")
	}
	if r.DailyRate < 0 {
		return errors.New("daily_rate must not be negative")
	}
	return nil
}
