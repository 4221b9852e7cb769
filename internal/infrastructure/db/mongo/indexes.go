package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	collection string
	field      string
	unique     bool
}

// Unique indexes back the duplicate checks of the repositories: a second
// insert with the same key fails with a duplicate key error.
var indexes = []indexSpec{
	{collectionUsers, "email", true},
	{collectionBookings, "bookingId", true},
	{collectionRooms, "roomId", true},
	{collectionRooms, "category", false},
	{collectionCategories, "name", true},
	{collectionGallery, "name", true},
	{collectionBookingEvents, "bookingId", false},
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: options.Index().SetUnique(idx.unique),
		}
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index %s.%s: %w", idx.collection, idx.field, err)
		}
	}
	return nil
}
