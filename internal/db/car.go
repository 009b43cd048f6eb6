package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/car-rental-backend/internal/models"
)

// CarCollection defines the interface for car record operations
type CarCollection interface {
	InsertCar(ctx context.Context, car models.Car) (*models.Car, error)
	FindCars(ctx context.Context) ([]models.Car, error)
	FindCarByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	FindCarByPlate(ctx context.Context, plateNumber string) (*models.Car, error)
	SetCarAvailability(ctx context.Context, id primitive.ObjectID, available bool) error
}

// MongoCarCollection implements CarCollection for MongoDB
type MongoCarCollection struct {
	Collection *mongo.Collection
}

// InsertCar inserts a car record and returns the stored document.
func (c *MongoCarCollection) InsertCar(ctx context.Context, car models.Car) (*models.Car, error) {
	now := time.Now().UTC()
	car.CreatedAt = now
	car.UpdatedAt = now

	result, err := c.Collection.InsertOne(ctx, car)
	if err != nil {
		return nil, err
	}
	return c.FindCarByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// FindCars returns all car records in storage order.
func (c *MongoCarCollection) FindCars(ctx context.Context) ([]models.Car, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cars := []models.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// FindCarByID finds a car by its id.
func (c *MongoCarCollection) FindCarByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	var car models.Car
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

// FindCarByPlate finds a car by its plate number.
func (c *MongoCarCollection) FindCarByPlate(ctx context.Context, plateNumber string) (*models.Car, error) {
	var car models.Car
	err := c.Collection.FindOne(ctx, bson.M{"plate_number": plateNumber}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

// SetCarAvailability flips the availability flag on a car.
func (c *MongoCarCollection) SetCarAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"available": available, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
