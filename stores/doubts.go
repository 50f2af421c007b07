package stores

import (
	"context"

	"tastebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDoubtStore struct {
	coll *mongo.Collection
}

func NewMongoDoubtStore(coll *mongo.Collection) *MongoDoubtStore {
	return &MongoDoubtStore{coll: coll}
}

func (s *MongoDoubtStore) Insert(ctx context.Context, doubt *models.Doubt) error {
	_, err := s.coll.InsertOne(ctx, doubt)
	return err
}
