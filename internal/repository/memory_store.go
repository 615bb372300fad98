package repository

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/nasarali03/Portfolio/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type memoryCollection struct {
	docs map[string]bson.M
	seq  map[string]int64
}

// MemoryStore keeps documents in process. It backs tests and the
// STORE_DRIVER=memory mode.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	nextSeq     int64
	unavailable bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memoryCollection),
	}
}

func (s *MemoryStore) Name() string {
	return "memory"
}

// SetUnavailable makes every operation fail with models.ErrStoreUnavailable.
func (s *MemoryStore) SetUnavailable(unavailable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = unavailable
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unavailable {
		return models.ErrStoreUnavailable
	}
	return ctx.Err()
}

func (s *MemoryStore) GetOrderedCollection(ctx context.Context, collection string, out any) error {
	s.mu.RLock()
	if s.unavailable {
		s.mu.RUnlock()
		return fmt.Errorf("failed to fetch %s: %w", collection, models.ErrStoreUnavailable)
	}

	var docs []bson.M
	var seqs map[string]int64
	if col, ok := s.collections[collection]; ok {
		docs = make([]bson.M, 0, len(col.docs))
		for _, doc := range col.docs {
			docs = append(docs, maps.Clone(doc))
		}
		seqs = maps.Clone(col.seq)
	}
	s.mu.RUnlock()

	sortByOrder(docs, func(doc bson.M) int64 {
		id, _ := doc["_id"].(string)
		return seqs[id]
	})
	return decodeDocuments(docs, out)
}

func (s *MemoryStore) GetSingleton(ctx context.Context, collection, id string, out any) error {
	s.mu.RLock()
	if s.unavailable {
		s.mu.RUnlock()
		return fmt.Errorf("failed to fetch %s/%s: %w", collection, id, models.ErrStoreUnavailable)
	}
	var doc bson.M
	if col, ok := s.collections[collection]; ok {
		if found, ok := col.docs[id]; ok {
			doc = maps.Clone(found)
		}
	}
	s.mu.RUnlock()

	if doc == nil {
		return fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
	}
	return decodeDocument(doc, out)
}

func (s *MemoryStore) Upsert(ctx context.Context, collection, id string, data any) (string, error) {
	fields, err := toDocument(data)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return "", fmt.Errorf("failed to write %s: %w", collection, models.ErrStoreUnavailable)
	}

	if id == "" {
		id = bson.NewObjectID().Hex()
	}

	col, ok := s.collections[collection]
	if !ok {
		col = &memoryCollection{docs: make(map[string]bson.M), seq: make(map[string]int64)}
		s.collections[collection] = col
	}

	doc, exists := col.docs[id]
	if !exists {
		doc = bson.M{"_id": id}
		s.nextSeq++
		col.seq[id] = s.nextSeq
	}
	for k, v := range fields {
		doc[k] = v
	}
	col.docs[id] = doc
	return id, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, models.ErrStoreUnavailable)
	}
	if col, ok := s.collections[collection]; ok {
		delete(col.docs, id)
		delete(col.seq, id)
	}
	return nil
}
