package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nasarali03/Portfolio/internal/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps content in Cloud Firestore. Documents use the same
// field names as the JSON representation of the models.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Name() string {
	return "firestore"
}

func (s *FirestoreStore) col(name string) *firestore.CollectionRef {
	return s.client.Collection(name)
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	if _, err := s.col(models.CollectionSingletons).Limit(1).Documents(ctx).GetAll(); err != nil {
		return fmt.Errorf("failed to reach Firestore: %w", classifyFirestoreError(err))
	}
	return nil
}

// GetOrderedCollection relies on Firestore ordering ties by document name,
// which is stable for a given set of ids.
func (s *FirestoreStore) GetOrderedCollection(ctx context.Context, collection string, out any) error {
	snaps, err := s.col(collection).OrderBy("order", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", collection, classifyFirestoreError(err))
	}

	items := make([]map[string]any, 0, len(snaps))
	for _, snap := range snaps {
		data := snap.Data()
		data["id"] = snap.Ref.ID
		items = append(items, data)
	}
	return fromFirestoreData(items, out)
}

func (s *FirestoreStore) GetSingleton(ctx context.Context, collection, id string, out any) error {
	snap, err := s.col(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to fetch %s/%s: %w", collection, id, classifyFirestoreError(err))
	}
	data := snap.Data()
	data["id"] = snap.Ref.ID
	return fromFirestoreData(data, out)
}

func (s *FirestoreStore) Upsert(ctx context.Context, collection, id string, data any) (string, error) {
	fields, err := toFirestoreData(data)
	if err != nil {
		return "", err
	}

	var ref *firestore.DocumentRef
	if id == "" {
		ref = s.col(collection).NewDoc()
	} else {
		ref = s.col(collection).Doc(id)
	}

	if _, err := ref.Set(ctx, fields, firestore.MergeAll); err != nil {
		return "", fmt.Errorf("failed to upsert %s/%s: %w", collection, ref.ID, classifyFirestoreError(err))
	}
	return ref.ID, nil
}

// DeleteByID succeeds for missing documents, Firestore deletes are idempotent.
func (s *FirestoreStore) DeleteByID(ctx context.Context, collection, id string) error {
	if _, err := s.col(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, classifyFirestoreError(err))
	}
	return nil
}

func classifyFirestoreError(err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	return err
}

// toFirestoreData converts a model or partial map into a field map, keeping
// integers as int64 so "order" sorts numerically.
func toFirestoreData(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	fields := map[string]any{}
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	delete(fields, "id")
	delete(fields, "_id")
	return normalizeNumbers(fields).(map[string]any), nil
}

func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
		return val
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		f, _ := val.Float64()
		return f
	default:
		return v
	}
}

func fromFirestoreData(data any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
