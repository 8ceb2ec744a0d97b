// Package database wraps the MongoDB client with an explicit lifecycle.
// Construct with Connect, pass the *Database to repositories, and Close it
// on shutdown — never reach for a package-level singleton.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ghuser/inventory/pkg/config"
	"github.com/ghuser/inventory/pkg/logger"
)

// Database wraps a mongo.Client scoped to a single logical database.
// The driver maintains its own connection pool; sessions are checked out
// per operation and returned unconditionally, including on failure paths.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
	log    logger.Logger
}

// Connect dials MongoDB from cfg, verifies connectivity with a ping, and
// returns a Database handle for cfg.MongoDatabase.
func Connect(ctx context.Context, cfg *config.Config, log logger.Logger) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.MongoDatabase),
		log:    log,
	}, nil
}

// Ping checks the MongoDB connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}
	return nil
}

// Collection returns a handle to the named collection.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Close disconnects the client, draining the connection pool.
func (d *Database) Close(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect: %w", err)
	}
	return nil
}
