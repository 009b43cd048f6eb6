package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/car-rental-backend/internal/config"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Collection names persisted in the database.
const (
	CarCollectionName     = "car"
	RentalCollectionName  = "rental"
	InvoiceCollectionName = "invoice"
)

// ParseID parses a hex record identifier into an ObjectID. Malformed input
// fails here, before any store lookup happens.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return oid, nil
}

// Store owns the database handle and the typed collection accessors. It is
// constructed once in main and passed to the handlers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Cars     *MongoCarCollection
	Rentals  *MongoRentalCollection
	Invoices *MongoInvoiceCollection
}

// Connect connects to MongoDB using the configured URI, verifies the
// connection with a ping, and returns a Store bound to the configured
// database.
func Connect(ctx context.Context, cfg config.Config) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}

	database := client.Database(cfg.DatabaseName)
	return &Store{
		client:   client,
		db:       database,
		Cars:     &MongoCarCollection{Collection: database.Collection(CarCollectionName)},
		Rentals:  &MongoRentalCollection{Collection: database.Collection(RentalCollectionName)},
		Invoices: &MongoInvoiceCollection{Collection: database.Collection(InvoiceCollectionName)},
	}, nil
}

// Name returns the name of the connected database.
func (s *Store) Name() string {
	return s.db.Name()
}

// CollectionNames lists the collections present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Disconnect closes the underlying client connection.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
