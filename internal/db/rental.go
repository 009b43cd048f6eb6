package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/car-rental-backend/internal/models"
)

// RentalCollection defines the interface for rental record operations
type RentalCollection interface {
	InsertRental(ctx context.Context, rental models.Rental) (*models.Rental, error)
	FindRentals(ctx context.Context) ([]models.Rental, error)
	FindActiveRentals(ctx context.Context) ([]models.Rental, error)
	FindRentalByID(ctx context.Context, id primitive.ObjectID) (*models.Rental, error)
	MarkRentalReturned(ctx context.Context, id primitive.ObjectID, endDate time.Time) error
}

// MongoRentalCollection implements RentalCollection for MongoDB
type MongoRentalCollection struct {
	Collection *mongo.Collection
}

// InsertRental inserts a rental record and returns the stored document.
func (c *MongoRentalCollection) InsertRental(ctx context.Context, rental models.Rental) (*models.Rental, error) {
	now := time.Now().UTC()
	rental.CreatedAt = now
	rental.UpdatedAt = now

	result, err := c.Collection.InsertOne(ctx, rental)
	if err != nil {
		return nil, err
	}
	return c.FindRentalByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// FindRentals returns all rental records in storage order.
func (c *MongoRentalCollection) FindRentals(ctx context.Context) ([]models.Rental, error) {
	return c.findRentals(ctx, bson.M{})
}

// FindActiveRentals returns the rentals whose status is "active".
func (c *MongoRentalCollection) FindActiveRentals(ctx context.Context) ([]models.Rental, error) {
	return c.findRentals(ctx, bson.M{"status": models.RentalStatusActive})
}

func (c *MongoRentalCollection) findRentals(ctx context.Context, filter bson.M) ([]models.Rental, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rentals := []models.Rental{}
	if err := cursor.All(ctx, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// FindRentalByID finds a rental by its id.
func (c *MongoRentalCollection) FindRentalByID(ctx context.Context, id primitive.ObjectID) (*models.Rental, error) {
	var rental models.Rental
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rental)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rental, nil
}

// MarkRentalReturned sets the end date and flips the rental status to
// "returned". There is no transition back out of "returned".
func (c *MongoRentalCollection) MarkRentalReturned(ctx context.Context, id primitive.ObjectID, endDate time.Time) error {
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"end_date":   endDate,
			"status":     models.RentalStatusReturned,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
