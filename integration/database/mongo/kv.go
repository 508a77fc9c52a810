package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/dataview/core/kv"
)

// KV is a MongoDB-backed implementation of kv.Store. Entries live in a
// single collection keyed by document ID.
type KV struct {
	coll *mongo.Collection
}

type kvDocument struct {
	ID    string `bson:"_id"`
	Value string `bson:"value"`
}

// NewKV creates a kv.Store over the given collection.
func NewKV(coll *mongo.Collection) *KV {
	return &KV{coll: coll}
}

// Get returns the value stored under key, or kv.ErrNotFound.
func (s *KV) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", kv.ErrEmptyKey
	}

	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Join(kv.ErrReadStore, err)
	}
	return doc.Value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *KV) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(kv.ErrWriteStore, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *KV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if _, err := s.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}}); err != nil {
		return errors.Join(kv.ErrWriteStore, err)
	}
	return nil
}
