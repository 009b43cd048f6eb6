package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/car-rental-backend/internal/models"
)

// InvoiceCollection defines the interface for invoice record operations.
// Invoices are written once at return time and never updated or deleted.
type InvoiceCollection interface {
	InsertInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error)
	FindInvoices(ctx context.Context) ([]models.Invoice, error)
	FindInvoiceByID(ctx context.Context, id primitive.ObjectID) (*models.Invoice, error)
}

// MongoInvoiceCollection implements InvoiceCollection for MongoDB
type MongoInvoiceCollection struct {
	Collection *mongo.Collection
}

// InsertInvoice inserts an invoice record and returns the stored document.
func (c *MongoInvoiceCollection) InsertInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	invoice.CreatedAt = time.Now().UTC()

	result, err := c.Collection.InsertOne(ctx, invoice)
	if err != nil {
		return nil, err
	}
	return c.FindInvoiceByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// FindInvoices returns all invoice records in storage order.
func (c *MongoInvoiceCollection) FindInvoices(ctx context.Context) ([]models.Invoice, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	invoices := []models.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindInvoiceByID finds an invoice by its id.
func (c *MongoInvoiceCollection) FindInvoiceByID(ctx context.Context, id primitive.ObjectID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}
