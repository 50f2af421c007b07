package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo bundles the client and the collections the application uses.
// Handles are passed down explicitly instead of living in package globals.
type Mongo struct {
	Client  *mongo.Client
	Recipes *mongo.Collection
	Users   *mongo.Collection
	Doubts  *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	database := client.Database(dbName)
	return &Mongo{
		Client:  client,
		Recipes: database.Collection("recipes"),
		Users:   database.Collection("users"),
		Doubts:  database.Collection("doubts"),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
