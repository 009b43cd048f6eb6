package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-rental-backend/internal/config"
	"github.com/ukydev/car-rental-backend/internal/db"
	"github.com/ukydev/car-rental-backend/internal/handlers"
	"github.com/ukydev/car-rental-backend/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	store, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.WithField("database", store.Name()).Info("Connected to MongoDB")

	carHandler := handlers.NewCarHandler(store.Cars)
	rentalHandler := handlers.NewRentalHandler(store.Rentals, store.Cars, store.Invoices)
	invoiceHandler := handlers.NewInvoiceHandler(store.Invoices)
	statusHandler := handlers.NewStatusHandler(store)

	router := handlers.NewRouter(carHandler, rentalHandler, invoiceHandler, statusHandler)
	handler := middleware.CORS(middleware.RequestLogger(router))

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
