package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// DB wraps a connected client and the application database handle. It is
// constructed once at startup and injected into the repositories.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client against the given URI and pings the primary so a bad
// configuration fails at startup rather than on the first request.
func Connect(ctx context.Context, uri, databaseName string) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &DB{client: client, db: client.Database(databaseName)}, nil
}

func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}
