package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceItem is an optional line item on an invoice.
type InvoiceItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unit_price"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// Invoice is generated once when a rental is returned and never changes
// afterwards. Collection: "invoice". RentalID and CarID are references to the
// source records; the customer name is a denormalized copy taken at return time.
type Invoice struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RentalID     string             `bson:"rental_id" json:"rental_id"`
	CarID        string             `bson:"car_id" json:"car_id"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	StartDate    time.Time          `bson:"start_date" json:"start_date"`
	EndDate      time.Time          `bson:"end_date" json:"end_date"`
	Days         int                `bson:"days" json:"days"`
	DailyRate    float64            `bson:"daily_rate" json:"daily_rate"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	TaxRate      float64            `bson:"tax_rate" json:"tax_rate"`
	TaxAmount    float64            `bson:"tax_amount" json:"tax_amount"`
	Total        float64            `bson:"total" json:"total"`
	Items        []InvoiceItem      `bson:"items" json:"items"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
