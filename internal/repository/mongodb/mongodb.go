// Package mongodb implements the record store repositories on MongoDB,
// the hosted document store holding the user and contribution collections.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the MongoDB client and the collections backing the record store.
type DB struct {
	client        *mongo.Client
	users         *mongo.Collection
	contributions *mongo.Collection
	admins        *mongo.Collection
}

// New connects to MongoDB at uri, pings it, and selects the named database.
func New(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	database := client.Database(dbName)
	return &DB{
		client:        client,
		users:         database.Collection("users"),
		contributions: database.Collection("contributions"),
		admins:        database.Collection("admins"),
	}, nil
}

// EnsureIndexes creates the indexes the application relies on. It is safe
// to run on every startup.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create admin email index: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// Users returns the repository for the users collection.
func (db *DB) Users() *UserRepository { return &UserRepository{coll: db.users} }

// Contributions returns the repository for the contributions collection.
func (db *DB) Contributions() *ContributionRepository {
	return &ContributionRepository{coll: db.contributions}
}

// Admins returns the repository for the admins collection.
func (db *DB) Admins() *AdminRepository { return &AdminRepository{coll: db.admins} }
