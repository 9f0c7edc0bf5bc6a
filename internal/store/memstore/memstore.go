// Package memstore implements store.Store in process memory for tests.
// Documents round-trip through BSON on insert and read, so values come back
// with the same types a real MongoDB would produce (ObjectID, DateTime,
// Decimal128).
package memstore

import (
	"context"
	"reflect"
	"sync"

	"github.com/craftygram/craftygram-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu    sync.Mutex
	colls map[string]*collection
}

// New returns an initialized in-memory store.
func New() *Store {
	return &Store{colls: make(map[string]*collection)}
}

func (s *Store) Collection(name string) store.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.colls[name]
	if !ok {
		c = &collection{}
		s.colls[name] = c
	}
	return c
}

// Ping always succeeds; the fake store is never unreachable.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

type collection struct {
	mu   sync.RWMutex
	docs []bson.M
}

func (c *collection) InsertOne(ctx context.Context, doc any) (any, error) {
	m, err := roundTrip(doc)
	if err != nil {
		return nil, err
	}
	id := primitive.NewObjectID()
	m["_id"] = id

	c.mu.Lock()
	c.docs = append(c.docs, m)
	c.mu.Unlock()
	return id, nil
}

func (c *collection) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]bson.M, 0)
	for _, doc := range c.docs {
		if int64(len(out)) >= limit {
			break
		}
		if !matches(doc, filter) {
			continue
		}
		cp, err := roundTrip(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (c *collection) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			return roundTrip(doc)
		}
	}
	return nil, store.ErrNoDocuments
}

func (c *collection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if matches(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// matches checks top-level field equality, which is all the services filter on.
func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// roundTrip deep-copies a document through the BSON codec so callers never
// alias stored state and field types match driver output.
func roundTrip(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
