package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by tests. Documents round-trip
// through BSON on the way in so they carry the same types a real
// collection would hand back.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]bson.M)}
}

func (m *Memory) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := []bson.M{}
	for _, doc := range m.data[collection] {
		if matches(doc, filter) {
			results = append(results, doc)
		}
	}
	return results, nil
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.data[collection] {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	normalized, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	if _, ok := normalized["_id"]; !ok {
		normalized["_id"] = primitive.NewObjectID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = append(m.data[collection], normalized)

	if oid, ok := normalized["_id"].(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", normalized["_id"]), nil
}

func (m *Memory) UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (UpdateResult, error) {
	set, _ := update["$set"].(bson.M)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.data[collection] {
		if !matches(doc, filter) {
			continue
		}
		for k, v := range set {
			doc[k] = v
		}
		return UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	if !upsert {
		return UpdateResult{}, nil
	}

	doc := bson.M{}
	for k, v := range filter {
		doc[k] = v
	}
	for k, v := range set {
		doc[k] = v
	}
	id := primitive.NewObjectID()
	doc["_id"] = id
	m.data[collection] = append(m.data[collection], doc)
	return UpdateResult{UpsertedID: id}, nil
}

func toDocument(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var normalized bson.M
	if err := bson.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
