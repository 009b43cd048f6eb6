// Package billing computes invoices for returned rentals. It is pure: all
// inputs are snapshots and the clock, nothing here touches the store.
package billing

import (
	"math"
	"time"

	"github.com/ukydev/car-rental-backend/internal/models"
)

const day = 24 * time.Hour

// BilledDays returns the number of days charged for the interval from start
// to end. Any partial day rounds up to a full day, counting leftover time in
// whole seconds, and a zero-length interval is still billed for one day.
func BilledDays(start, end time.Time) int {
	duration := end.Sub(start)
	days := int(duration / day)
	leftoverSeconds := (duration % day) / time.Second
	if leftoverSeconds > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// ComputeInvoice prices a rental from the car and rental snapshots taken at
// return time. The rental's end date is expected to be set by then; when it
// is not, now stands in for it. Subtotal, tax and total are each rounded to
// two decimals independently.
func ComputeInvoice(car models.Car, rental models.Rental, taxRate float64, now time.Time) models.Invoice {
	start := rental.StartDate
	end := now
	if rental.EndDate != nil {
		end = *rental.EndDate
	}

	days := BilledDays(start, end)
	subtotal := round2(float64(days) * car.DailyRate)
	taxAmount := round2(subtotal * taxRate)
	total := round2(subtotal + taxAmount)

	return models.Invoice{
		RentalID:     rental.ID.Hex(),
		CarID:        car.ID.Hex(),
		CustomerName: rental.CustomerName,
		StartDate:    start,
		EndDate:      end,
		Days:         days,
		DailyRate:    car.DailyRate,
		Subtotal:     subtotal,
		TaxRate:      taxRate,
		TaxAmount:    taxAmount,
		Total:        total,
		Items:        nil,
	}
}

// round2 rounds to two decimal places, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
