// Command simulator drives the car rental API with realistic traffic:
// it seeds a small fleet, then starts and returns rentals in a loop.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

type car struct {
	ID          string  `json:"id"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PlateNumber string  `json:"plate_number"`
	DailyRate   float64 `json:"daily_rate"`
	Available   bool    `json:"available"`
}

type rental struct {
	ID     string `json:"id"`
	CarID  string `json:"car_id"`
	Status string `json:"status"`
}

var makes = []string{"Toyota", "Honda", "Ford", "BMW", "Audi"}
var carModels = map[string][]string{
	"Toyota": {"Corolla", "Camry", "RAV4"},
	"Honda":  {"Civic", "Accord", "CR-V"},
	"Ford":   {"Focus", "Fiesta", "Explorer"},
	"BMW":    {"320i", "X3", "X5"},
	"Audi":   {"A3", "A4", "Q5"},
}

var customers = []string{
	"Alice Johnson", "Bob Smith", "Carol White", "David Brown",
	"Erin Davis", "Frank Miller", "Grace Wilson", "Henry Moore",
}

func postJSON(url string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	resp, err := httpClient.Post(url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func createCar(apiURL string, n int) (*car, error) {
	make := makes[rand.Intn(len(makes))]
	model := carModels[make][rand.Intn(len(carModels[make]))]

	payload := map[string]interface{}{
		"make":         make,
		"model":        model,
		"year":         2018 + rand.Intn(7), // 2018-2024
		"plate_number": fmt.Sprintf("SIM-%04d", n),
		"daily_rate":   25.0 + float64(rand.Intn(16))*5, // 25-100 in steps of 5
	}

	var created car
	if err := postJSON(apiURL+"/api/cars", payload, &created); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	log.WithFields(log.Fields{
		"car_id": created.ID,
		"make":   created.Make,
		"model":  created.Model,
		"plate":  created.PlateNumber,
	}).Info("Created car")
	return &created, nil
}

func startRental(apiURL, carID string) (*rental, error) {
	payload := map[string]string{
		"car_id":        carID,
		"customer_name": customers[rand.Intn(len(customers))],
	}
	var started rental
	if err := postJSON(apiURL+"/api/rentals/start", payload, &started); err != nil {
		return nil, fmt.Errorf("failed to start rental: %w", err)
	}
	log.WithFields(log.Fields{"rental_id": started.ID, "car_id": carID}).Info("Started rental")
	return &started, nil
}

func returnRental(apiURL, rentalID string, taxRate float64) error {
	payload := map[string]float64{"tax_rate": taxRate}
	var result struct {
		Invoice struct {
			ID    string  `json:"id"`
			Days  int     `json:"days"`
			Total float64 `json:"total"`
		} `json:"invoice"`
	}
	if err := postJSON(apiURL+"/api/rentals/"+rentalID+"/return", payload, &result); err != nil {
		return fmt.Errorf("failed to return rental: %w", err)
	}
	log.WithFields(log.Fields{
		"rental_id":  rentalID,
		"invoice_id": result.Invoice.ID,
		"days":       result.Invoice.Days,
		"total":      result.Invoice.Total,
	}).Info("Returned rental")
	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}
	numCars := envInt("NUM_CARS", 5)
	intervalSec := envInt("INTERVAL_SECONDS", 5)

	log.WithFields(log.Fields{"api_url": apiURL, "num_cars": numCars}).Info("Simulator starting")

	cars := make([]*car, 0, numCars)
	for i := 0; i < numCars; i++ {
		c, err := createCar(apiURL, rand.Intn(10000))
		if err != nil {
			log.WithError(err).Error("Car creation failed")
			continue
		}
		cars = append(cars, c)
	}
	if len(cars) == 0 {
		log.Fatal("No cars created, giving up")
	}

	active := map[string]string{} // rental id -> car id
	for {
		// Return roughly half of the active rentals each round.
		for rentalID := range active {
			if rand.Intn(2) == 0 {
				continue
			}
			taxRate := float64(rand.Intn(21)) / 100 // 0.00-0.20
			if err := returnRental(apiURL, rentalID, taxRate); err != nil {
				log.WithError(err).Error("Return failed")
				continue
			}
			delete(active, rentalID)
		}

		// Try to rent a random car; the API rejects cars already out.
		c := cars[rand.Intn(len(cars))]
		if r, err := startRental(apiURL, c.ID); err != nil {
			log.WithError(err).Debug("Start skipped")
		} else {
			active[r.ID] = c.ID
		}

		time.Sleep(time.Duration(intervalSec) * time.Second)
	}
}
