package mongodb

import (
	"context"

	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	workersCollection    = "workers"
	attendanceCollection = "attendance"
)

// EnsureIndexes creates the (workerId, date) uniqueness constraint and the lookup indexes.
func EnsureIndexes(ctx context.Context, db *database.MongoDB) error {
	if _, err := db.Collection(attendanceCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workerId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}); err != nil {
		return database.StoreError("create attendance indexes", err)
	}

	if _, err := db.Collection(workersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}); err != nil {
		return database.StoreError("create workers indexes", err)
	}
	return nil
}
