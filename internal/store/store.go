package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// UpdateResult mirrors the driver's update acknowledgment.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// Store is the document-store surface the service layer runs on:
// equality-match reads, inserts and $set updates over named collections.
type Store interface {
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (UpdateResult, error)
}

// Decode re-marshals a loosely typed document into a typed value.
func Decode(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
