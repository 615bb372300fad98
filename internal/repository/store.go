package repository

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store is the document store contract shared by every backend.
//
// GetOrderedCollection decodes all documents of a collection into out (a
// pointer to a slice) sorted by "order" ascending, ties in insertion order.
// GetSingleton decodes one document into out and fails with
// models.ErrNotFound when it does not exist. Upsert merges the fields present
// in data into the document, allocating an id when id is empty, and returns
// the resolved id. DeleteByID is idempotent.
type Store interface {
	Name() string
	Ping(ctx context.Context) error
	GetOrderedCollection(ctx context.Context, collection string, out any) error
	GetSingleton(ctx context.Context, collection, id string, out any) error
	Upsert(ctx context.Context, collection, id string, data any) (string, error)
	DeleteByID(ctx context.Context, collection, id string) error
}

const seqField = "_seq"

// toDocument flattens a model struct or partial map into the set of fields
// to merge. The id is never part of the merged fields.
func toDocument(data any) (bson.M, error) {
	if data == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	delete(doc, "_id")
	delete(doc, "id")
	delete(doc, seqField)
	return doc, nil
}

func decodeDocument(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

func decodeDocuments(docs []bson.M, out any) error {
	if docs == nil {
		docs = []bson.M{}
	}
	raw, err := bson.Marshal(bson.M{"items": docs})
	if err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}
	if err := bson.Raw(raw).Lookup("items").Unmarshal(out); err != nil {
		return fmt.Errorf("failed to decode documents: %w", err)
	}
	return nil
}

func orderOf(doc bson.M) float64 {
	switch v := doc["order"].(type) {
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func sortByOrder(docs []bson.M, seq func(bson.M) int64) {
	sort.SliceStable(docs, func(i, j int) bool {
		oi, oj := orderOf(docs[i]), orderOf(docs[j])
		if oi != oj {
			return oi < oj
		}
		return seq(docs[i]) < seq(docs[j])
	})
}
