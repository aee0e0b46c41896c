package database

import (
	"context"
	"fmt"
	"time"

	"dealspot/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared by all jobs.
const (
	Categories        = "categories"
	CategoryVibes     = "categoryvibes"
	CategoryOccasions = "categoryoccasions"
	CategoryHashtags  = "categoryhashtags"
	Stores            = "stores"
	Brands            = "brands"
	Offers            = "offers"
	FlashSales        = "flashsales"
	Coupons           = "coupons"
	SearchHistories   = "searchhistories"
	NearbyActivities  = "nearbyactivities"
	Admins            = "admins"
)

// Connect establishes a MongoDB connection and returns an explicit handle.
// Callers own the client and must Disconnect it on every exit path.
func Connect(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Disconnect closes the MongoDB connection with a bounded timeout.
func Disconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the jobs rely on. Index creation is
// idempotent on the server side, so re-running a job is safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		indexes    []mongo.IndexModel
	}{
		{
			collection: Categories,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "isActive", Value: 1}}},
			},
		},
		{
			collection: CategoryVibes,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "categorySlug", Value: 1}, {Key: "sortOrder", Value: 1}}},
			},
		},
		{
			collection: CategoryOccasions,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "categorySlug", Value: 1}, {Key: "sortOrder", Value: 1}}},
			},
		},
		{
			collection: CategoryHashtags,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "categorySlug", Value: 1}, {Key: "sortOrder", Value: 1}}},
			},
		},
		{
			collection: Stores,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "zone", Value: 1}}},
				{Keys: bson.D{{Key: "city", Value: 1}}},
				{Keys: bson.D{{Key: "supportsBNPL", Value: 1}}},
			},
		},
		{
			collection: Brands,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "categorySlug", Value: 1}}},
			},
		},
		{
			collection: Offers,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "brandSlug", Value: 1}}},
				{Keys: bson.D{{Key: "categorySlug", Value: 1}}},
				{Keys: bson.D{{Key: "validTo", Value: 1}}},
			},
		},
		{
			collection: Coupons,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
		{
			collection: SearchHistories,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "query", Value: 1}}},
			},
		},
		{
			collection: NearbyActivities,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "createdAt", Value: 1}}},
				{Keys: bson.D{{Key: "zone", Value: 1}}},
			},
		},
		{
			collection: Admins,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
	}

	for _, group := range indexes {
		if len(group.indexes) == 0 {
			continue
		}
		_, err := db.Collection(group.collection).Indexes().CreateMany(ctx, group.indexes)
		if err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", group.collection, err)
		}
	}

	return nil
}

// EnsureCollection creates a collection if it does not exist yet.
func EnsureCollection(ctx context.Context, db *mongo.Database, name string) error {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if len(collections) == 0 {
		return db.CreateCollection(ctx, name)
	}
	return nil
}
